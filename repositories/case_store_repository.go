package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
	"github.com/opentribunal/casework-backend/repositories/httpmodels"
)

const caseStoreReadAttempts = 3

// CaseStoreRepository talks to the external case store. Reads (and event
// starts, which only issue a fresh token) are retried on transient
// failures; SubmitEvent is never retried because the version token it
// quotes is single-use.
type CaseStoreRepository struct {
	client  *http.Client
	baseURL string
	tokens  serviceTokenProvider
}

func NewCaseStoreRepository(client *http.Client, baseURL string, tokens serviceTokenProvider) CaseStoreRepository {
	return CaseStoreRepository{
		client:  client,
		baseURL: baseURL,
		tokens:  tokens,
	}
}

func (repo CaseStoreRepository) GetCase(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string,
) (models.CaseRecord, error) {
	url := fmt.Sprintf("%s/cases/%s/%s", repo.baseURL, caseTypeID, caseID)

	details, err := retryRead(ctx, func() (httpmodels.HTTPCaseDetails, error) {
		var dest httpmodels.HTTPCaseDetails
		req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
		if err != nil {
			return dest, err
		}
		if err := authorize(ctx, req, creds, repo.tokens); err != nil {
			return dest, err
		}
		return dest, doJSON(repo.client, req, &dest)
	})
	if err != nil {
		return models.CaseRecord{}, mapCaseStoreError(errors.Wrapf(err, "can't fetch case %s", caseID))
	}
	return httpmodels.AdaptCaseRecord(details)
}

func (repo CaseStoreRepository) StartEvent(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, event models.CaseEventType,
) (models.CaseUpdate, error) {
	url := fmt.Sprintf("%s/cases/%s/%s/event-triggers/%s", repo.baseURL, caseTypeID, caseID, event)

	start, err := retryRead(ctx, func() (httpmodels.HTTPStartEventResponse, error) {
		var dest httpmodels.HTTPStartEventResponse
		req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
		if err != nil {
			return dest, err
		}
		if err := authorize(ctx, req, creds, repo.tokens); err != nil {
			return dest, err
		}
		return dest, doJSON(repo.client, req, &dest)
	})
	if err != nil {
		return models.CaseUpdate{}, mapCaseStoreError(errors.Wrapf(err, "can't start event %s on case %s", event, caseID))
	}

	record, err := httpmodels.AdaptCaseRecord(start.CaseDetails)
	if err != nil {
		return models.CaseUpdate{}, err
	}
	return models.CaseUpdate{
		Token:  start.Token,
		Event:  event,
		Record: record,
	}, nil
}

func (repo CaseStoreRepository) SubmitEvent(ctx context.Context, creds models.Credentials,
	caseTypeID, caseID string, update models.CaseUpdate,
) (models.CaseRecord, error) {
	if update.Token == "" {
		return models.CaseRecord{}, models.ErrMissingVersionToken
	}

	url := fmt.Sprintf("%s/cases/%s/%s/events", repo.baseURL, caseTypeID, caseID)
	body := httpmodels.HTTPSubmitEventRequest{
		Event:      httpmodels.HTTPEvent{ID: string(update.Event)},
		EventToken: update.Token,
		Data:       update.Record.Data,
	}

	req, err := newJSONRequest(ctx, http.MethodPost, url, body)
	if err != nil {
		return models.CaseRecord{}, err
	}
	if err := authorize(ctx, req, creds, repo.tokens); err != nil {
		return models.CaseRecord{}, err
	}

	var dest httpmodels.HTTPCaseDetails
	if err := doJSON(repo.client, req, &dest); err != nil {
		return models.CaseRecord{}, mapCaseStoreError(errors.Wrapf(err, "can't submit event %s on case %s", update.Event, caseID))
	}
	return httpmodels.AdaptCaseRecord(dest)
}

func (repo CaseStoreRepository) SearchCases(ctx context.Context, creds models.Credentials,
	caseTypeID string, query models.CaseSearchQuery,
) ([]models.CaseRecord, error) {
	url := fmt.Sprintf("%s/cases/%s/search", repo.baseURL, caseTypeID)
	body := httpmodels.HTTPSearchCasesRequest{
		CaseReferences: query.CaseReferences,
		ModifiedSince:  query.ModifiedSince,
	}

	result, err := retryRead(ctx, func() (httpmodels.HTTPSearchCasesResponse, error) {
		var dest httpmodels.HTTPSearchCasesResponse
		req, err := newJSONRequest(ctx, http.MethodPost, url, body)
		if err != nil {
			return dest, err
		}
		if err := authorize(ctx, req, creds, repo.tokens); err != nil {
			return dest, err
		}
		return dest, doJSON(repo.client, req, &dest)
	})
	if err != nil {
		return nil, mapCaseStoreError(errors.Wrap(err, "can't search cases"))
	}

	return pure_utils.MapErr(result.Cases, httpmodels.AdaptCaseRecord)
}

func retryRead[T any](ctx context.Context, call func() (T, error)) (T, error) {
	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(caseStoreReadAttempts),
		retry.RetryIf(isRetryableError),
		retry.LastErrorOnly(true),
	)
}

// mapCaseStoreError lifts the store's status codes onto the domain
// taxonomy: 404 means the case (or case type) is unknown upstream, 409 and
// 412 mean the quoted version token was stale or already consumed.
func mapCaseStoreError(err error) error {
	var statusErr HTTPStatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return errors.Join(models.ErrCaseNotFound, err)
	case http.StatusConflict, http.StatusPreconditionFailed:
		return errors.Join(models.ErrStaleCaseVersion, err)
	default:
		return err
	}
}
