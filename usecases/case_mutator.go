package usecases

import (
	"context"

	"github.com/opentribunal/casework-backend/models"
)

// CaseStoreRepository is the slice of the case store client the mutation
// protocol needs.
type CaseStoreRepository interface {
	GetCase(ctx context.Context, creds models.Credentials, caseTypeID, caseID string) (models.CaseRecord, error)
	StartEvent(ctx context.Context, creds models.Credentials, caseTypeID, caseID string,
		event models.CaseEventType) (models.CaseUpdate, error)
	SubmitEvent(ctx context.Context, creds models.Credentials, caseTypeID, caseID string,
		update models.CaseUpdate) (models.CaseRecord, error)
	SearchCases(ctx context.Context, creds models.Credentials, caseTypeID string,
		query models.CaseSearchQuery) ([]models.CaseRecord, error)
}

// CaseMutator wraps the store's two-phase update protocol. Every mutation
// is one start/submit cycle over a fresh snapshot: StartUpdate issues the
// single-use version token with the current record, the caller mutates the
// snapshot in memory, SubmitUpdate round-trips the whole thing back. There
// is no merge; two overlapping cycles on one case race and the store's
// token check decides which submit lands.
type CaseMutator struct {
	caseStore CaseStoreRepository
}

func NewCaseMutator(caseStore CaseStoreRepository) CaseMutator {
	return CaseMutator{caseStore: caseStore}
}

func (m CaseMutator) StartUpdate(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, event models.CaseEventType,
) (models.CaseUpdate, error) {
	return m.caseStore.StartEvent(ctx, creds, caseTypeID, caseID, event)
}

// SubmitUpdate consumes the update's version token. A ConflictError from
// the store means the token was stale or already used; the caller must
// restart the cycle, never re-submit.
func (m CaseMutator) SubmitUpdate(ctx context.Context, creds models.Credentials,
	update models.CaseUpdate,
) (models.CaseRecord, error) {
	if update.Token == "" {
		return models.CaseRecord{}, models.ErrMissingVersionToken
	}
	return m.caseStore.SubmitEvent(ctx, creds, update.Record.CaseTypeID, update.Record.ID, update)
}

// Update runs one full cycle: start, apply mutate to the snapshot, submit.
// When mutate fails nothing is submitted and the issued token is simply
// abandoned.
func (m CaseMutator) Update(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, event models.CaseEventType,
	mutate func(data *models.CaseData) error,
) (models.CaseRecord, error) {
	update, err := m.StartUpdate(ctx, creds, caseTypeID, caseID, event)
	if err != nil {
		return models.CaseRecord{}, err
	}
	if err := mutate(&update.Record.Data); err != nil {
		return models.CaseRecord{}, err
	}
	return m.SubmitUpdate(ctx, creds, update)
}

// GetUserCase and SearchCases are read-only and freely retryable; the
// bounded retry lives in the repository.

func (m CaseMutator) GetUserCase(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string,
) (models.CaseRecord, error) {
	return m.caseStore.GetCase(ctx, creds, caseTypeID, caseID)
}

func (m CaseMutator) SearchCases(ctx context.Context, creds models.Credentials,
	caseTypeID string, query models.CaseSearchQuery,
) ([]models.CaseRecord, error) {
	return m.caseStore.SearchCases(ctx, creds, caseTypeID, query)
}
