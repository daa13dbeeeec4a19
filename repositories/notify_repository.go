package repositories

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
)

// NotifyRepository sends templated emails through the notification
// provider. Dispatch is fire-and-forget from the provider's side, but a
// transport or provider failure surfaces to the caller.
type NotifyRepository struct {
	client  *http.Client
	baseURL string
	tokens  serviceTokenProvider
}

func NewNotifyRepository(client *http.Client, baseURL string, tokens serviceTokenProvider) NotifyRepository {
	return NotifyRepository{
		client:  client,
		baseURL: baseURL,
		tokens:  tokens,
	}
}

type httpSendEmailRequest struct {
	TemplateID      string            `json:"template_id"`
	EmailAddress    string            `json:"email_address"`
	Personalisation map[string]string `json:"personalisation,omitempty"`
	Reference       string            `json:"reference"`
}

type httpSendEmailResponse struct {
	ID string `json:"id"`
}

func (repo NotifyRepository) SendEmail(ctx context.Context, creds models.Credentials,
	email models.EmailRequest,
) (string, error) {
	body := httpSendEmailRequest{
		TemplateID:      email.TemplateID,
		EmailAddress:    email.Recipient,
		Personalisation: email.Parameters,
		Reference:       email.Reference,
	}

	req, err := newJSONRequest(ctx, http.MethodPost, repo.baseURL+"/v2/notifications/email", body)
	if err != nil {
		return "", err
	}
	if err := authorize(ctx, req, creds, repo.tokens); err != nil {
		return "", err
	}

	var dest httpSendEmailResponse
	if err := doJSON(repo.client, req, &dest); err != nil {
		return "", errors.Join(models.ErrNotificationDispatchFailed,
			errors.Wrapf(err, "can't send email %s", email.TemplateID))
	}
	return dest.ID, nil
}
