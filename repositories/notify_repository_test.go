package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentribunal/casework-backend/models"
)

func newTestNotify() NotifyRepository {
	client := &http.Client{}
	gock.InterceptClient(client)
	return NewNotifyRepository(client, "http://notify", staticTokens{token: "service-token"})
}

func TestSendEmail(t *testing.T) {
	defer gock.Off()
	repo := newTestNotify()

	gock.New("http://notify").
		Post("/v2/notifications/email").
		JSON(map[string]any{
			"template_id":   "tmpl-stored",
			"email_address": "jo@example.com",
			"personalisation": map[string]string{
				"caseReference": "1234/2024",
			},
			"reference": "12345678-app-1",
		}).
		Reply(http.StatusCreated).
		JSON(map[string]any{"id": "dispatch-42"})

	id, err := repo.SendEmail(context.Background(), testCredentials(), models.EmailRequest{
		TemplateID: "tmpl-stored",
		Recipient:  "jo@example.com",
		Parameters: map[string]string{"caseReference": "1234/2024"},
		Reference:  "12345678-app-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "dispatch-42", id)
	assert.True(t, gock.IsDone())
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	defer gock.Off()
	repo := newTestNotify()

	gock.New("http://notify").
		Post("/v2/notifications/email").
		Reply(http.StatusInternalServerError).
		JSON(map[string]any{"message": "provider unavailable"})

	_, err := repo.SendEmail(context.Background(), testCredentials(), models.EmailRequest{
		TemplateID: "tmpl-stored",
		Recipient:  "jo@example.com",
	})

	assert.ErrorIs(t, err, models.ErrNotificationDispatchFailed)
	assert.ErrorContains(t, err, "provider unavailable")
}
