package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/opentribunal/casework-backend/models"
)

type CaseStoreRepository struct {
	mock.Mock
}

func (r *CaseStoreRepository) GetCase(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string,
) (models.CaseRecord, error) {
	args := r.Called(ctx, creds, caseTypeID, caseID)
	return args.Get(0).(models.CaseRecord), args.Error(1)
}

func (r *CaseStoreRepository) StartEvent(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, event models.CaseEventType,
) (models.CaseUpdate, error) {
	args := r.Called(ctx, creds, caseTypeID, caseID, event)
	return args.Get(0).(models.CaseUpdate), args.Error(1)
}

func (r *CaseStoreRepository) SubmitEvent(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, update models.CaseUpdate,
) (models.CaseRecord, error) {
	args := r.Called(ctx, creds, caseTypeID, caseID, update)
	return args.Get(0).(models.CaseRecord), args.Error(1)
}

func (r *CaseStoreRepository) SearchCases(ctx context.Context, creds models.Credentials,
	caseTypeID string, query models.CaseSearchQuery,
) ([]models.CaseRecord, error) {
	args := r.Called(ctx, creds, caseTypeID, query)
	return args.Get(0).([]models.CaseRecord), args.Error(1)
}
