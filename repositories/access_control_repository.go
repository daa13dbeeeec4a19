package repositories

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
	"github.com/opentribunal/casework-backend/repositories/httpmodels"
)

// AccessControlRepository manages case-user role bindings in the external
// access control service. Adding a binding that already exists is accepted
// upstream (the service deduplicates on the (case, user, role) triple), so
// both verbs are safe to re-run.
type AccessControlRepository struct {
	client  *http.Client
	baseURL string
	tokens  serviceTokenProvider
}

func NewAccessControlRepository(client *http.Client, baseURL string, tokens serviceTokenProvider) AccessControlRepository {
	return AccessControlRepository{
		client:  client,
		baseURL: baseURL,
		tokens:  tokens,
	}
}

func (repo AccessControlRepository) AddCaseUserRoles(ctx context.Context, creds models.Credentials,
	bindings []models.CaseRoleBinding,
) error {
	if err := repo.modify(ctx, creds, http.MethodPost, bindings); err != nil {
		return errors.Wrap(err, "can't add case user roles")
	}
	return nil
}

func (repo AccessControlRepository) RemoveCaseUserRoles(ctx context.Context, creds models.Credentials,
	bindings []models.CaseRoleBinding,
) error {
	if err := repo.modify(ctx, creds, http.MethodDelete, bindings); err != nil {
		return errors.Wrap(err, "can't remove case user roles")
	}
	return nil
}

func (repo AccessControlRepository) modify(ctx context.Context, creds models.Credentials,
	method string, bindings []models.CaseRoleBinding,
) error {
	req, err := newJSONRequest(ctx, method, repo.baseURL+"/case-users", httpmodels.AdaptCaseUserRolesRequest(bindings))
	if err != nil {
		return err
	}
	if err := authorize(ctx, req, creds, repo.tokens); err != nil {
		return err
	}
	return doJSON(repo.client, req, nil)
}

func (repo AccessControlRepository) SearchCaseUserRoles(ctx context.Context, creds models.Credentials,
	caseIDs, userIDs []string,
) ([]models.CaseRoleBinding, error) {
	body := httpmodels.HTTPCaseUserRolesSearchRequest{
		CaseIDs: caseIDs,
		UserIDs: userIDs,
	}

	result, err := retryRead(ctx, func() (httpmodels.HTTPCaseUserRolesSearchResponse, error) {
		var dest httpmodels.HTTPCaseUserRolesSearchResponse
		req, err := newJSONRequest(ctx, http.MethodPost, repo.baseURL+"/case-users/search", body)
		if err != nil {
			return dest, err
		}
		if err := authorize(ctx, req, creds, repo.tokens); err != nil {
			return dest, err
		}
		return dest, doJSON(repo.client, req, &dest)
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't search case user roles")
	}

	return pure_utils.Map(result.CaseUsers, httpmodels.AdaptCaseRoleBinding), nil
}
