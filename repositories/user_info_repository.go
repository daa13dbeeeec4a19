package repositories

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
)

// UserInfoRepository resolves a bearer token into the identity provider's
// view of its subject. Token signature verification lives with the
// provider; we only forward the token and trust its answer.
type UserInfoRepository struct {
	client  *http.Client
	baseURL string
}

func NewUserInfoRepository(client *http.Client, baseURL string) UserInfoRepository {
	return UserInfoRepository{
		client:  client,
		baseURL: baseURL,
	}
}

type httpUserInfoResponse struct {
	UID   string   `json:"uid"`
	Sub   string   `json:"sub"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func (repo UserInfoRepository) GetUserInfo(ctx context.Context, bearerToken string) (models.UserInfo, error) {
	req, err := newJSONRequest(ctx, http.MethodGet, repo.baseURL+"/o/userinfo", nil)
	if err != nil {
		return models.UserInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	var dest httpUserInfoResponse
	if err := doJSON(repo.client, req, &dest); err != nil {
		var statusErr HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return models.UserInfo{}, errors.Join(models.UnAuthorizedError, err)
		}
		return models.UserInfo{}, errors.Wrap(err, "can't fetch user info")
	}
	return models.UserInfo{
		UserID: dest.UID,
		Email:  dest.Sub,
		Name:   dest.Name,
		Roles:  dest.Roles,
	}, nil
}
