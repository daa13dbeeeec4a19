package repositories

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
)

// DocRenderRepository renders a response as a PDF through the document
// generation service and returns a reference to the stored output. Callers
// on the respond path treat a failure here as best-effort: the state
// transition commits without the document.
type DocRenderRepository struct {
	client  *http.Client
	baseURL string
	tokens  serviceTokenProvider
}

func NewDocRenderRepository(client *http.Client, baseURL string, tokens serviceTokenProvider) DocRenderRepository {
	return DocRenderRepository{
		client:  client,
		baseURL: baseURL,
		tokens:  tokens,
	}
}

type httpRenderRequest struct {
	Template string         `json:"template"`
	Payload  map[string]any `json:"payload"`
}

type httpRenderResponse struct {
	URL       string `json:"url"`
	BinaryURL string `json:"binary_url"`
	Filename  string `json:"filename"`
}

func (repo DocRenderRepository) RenderResponseDocument(ctx context.Context, creds models.Credentials,
	caseReference string, application models.GenericApplicationItem, response models.ResponseItem,
) (models.DocumentRef, error) {
	body := httpRenderRequest{
		Template: "application-response",
		Payload: map[string]any{
			"caseReference":   caseReference,
			"applicationType": application.Type,
			"respondingParty": response.Author,
			"responseText":    response.Text,
			"responseDate":    response.Date,
		},
	}

	req, err := newJSONRequest(ctx, http.MethodPost, repo.baseURL+"/render", body)
	if err != nil {
		return models.DocumentRef{}, err
	}
	if err := authorize(ctx, req, creds, repo.tokens); err != nil {
		return models.DocumentRef{}, err
	}

	var dest httpRenderResponse
	if err := doJSON(repo.client, req, &dest); err != nil {
		return models.DocumentRef{}, errors.Wrap(err, "can't render response document")
	}
	return models.DocumentRef{
		URL:       dest.URL,
		BinaryURL: dest.BinaryURL,
		Filename:  dest.Filename,
	}, nil
}
