package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
)

// serviceAuthHeader carries the minted service-to-service token next to the
// caller's bearer token on every outbound call.
const serviceAuthHeader = "ServiceAuthorization"

type serviceTokenProvider interface {
	ServiceToken(ctx context.Context) (string, error)
}

func newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "can't encode request body")
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func authorize(ctx context.Context, req *http.Request, creds models.Credentials, tokens serviceTokenProvider) error {
	req.Header.Set("Authorization", "Bearer "+creds.BearerToken)
	serviceToken, err := tokens.ServiceToken(ctx)
	if err != nil {
		return errors.Wrap(err, "can't mint service token")
	}
	req.Header.Set(serviceAuthHeader, serviceToken)
	return nil
}

// doJSON executes the request and decodes a 2xx response into dest. Non-2xx
// responses come back as HTTPStatusError for the caller to map onto the
// domain taxonomy.
func doJSON(client *http.Client, req *http.Request, dest any) error {
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request error")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "can't read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPStatusError(resp.StatusCode, resp.Status, body)
	}
	if dest == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrap(err, "can't decode response body")
	}
	return nil
}
