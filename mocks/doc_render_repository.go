package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/opentribunal/casework-backend/models"
)

type DocRenderRepository struct {
	mock.Mock
}

func (r *DocRenderRepository) RenderResponseDocument(ctx context.Context, creds models.Credentials,
	caseReference string, application models.GenericApplicationItem, response models.ResponseItem,
) (models.DocumentRef, error) {
	args := r.Called(ctx, creds, caseReference, application, response)
	return args.Get(0).(models.DocumentRef), args.Error(1)
}
