package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/opentribunal/casework-backend/models"
)

type NotifyRepository struct {
	mock.Mock
}

func (r *NotifyRepository) SendEmail(ctx context.Context, creds models.Credentials,
	email models.EmailRequest,
) (string, error) {
	args := r.Called(ctx, creds, email)
	return args.String(0), args.Error(1)
}
