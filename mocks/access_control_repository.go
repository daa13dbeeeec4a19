package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/opentribunal/casework-backend/models"
)

type AccessControlRepository struct {
	mock.Mock
}

func (r *AccessControlRepository) AddCaseUserRoles(ctx context.Context, creds models.Credentials,
	bindings []models.CaseRoleBinding,
) error {
	args := r.Called(ctx, creds, bindings)
	return args.Error(0)
}

func (r *AccessControlRepository) RemoveCaseUserRoles(ctx context.Context, creds models.Credentials,
	bindings []models.CaseRoleBinding,
) error {
	args := r.Called(ctx, creds, bindings)
	return args.Error(0)
}
