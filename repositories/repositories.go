// Package repositories holds the HTTP clients for the external
// collaborators: the case store, the access control service, the
// notification provider, the document renderer and the identity provider.
package repositories

import (
	"net/http"
	"time"

	"github.com/opentribunal/casework-backend/repositories/clock"
)

type Repositories struct {
	CaseStoreRepository     CaseStoreRepository
	AccessControlRepository AccessControlRepository
	NotifyRepository        NotifyRepository
	DocRenderRepository     DocRenderRepository
	UserInfoRepository      UserInfoRepository
	ServiceTokenRepository  *ServiceTokenRepository
	Clock                   clock.Clock
}

type Config struct {
	CaseStoreURL     string
	AccessControlURL string
	NotifyURL        string
	DocRenderURL     string
	IdentityURL      string

	ServiceName          string
	ServiceTokenKey      []byte
	ServiceTokenLifetime time.Duration
}

func NewRepositories(config Config, client *http.Client) Repositories {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	c := clock.New()
	tokens := NewServiceTokenRepository(config.ServiceName, config.ServiceTokenKey, config.ServiceTokenLifetime, c)

	return Repositories{
		CaseStoreRepository:     NewCaseStoreRepository(client, config.CaseStoreURL, tokens),
		AccessControlRepository: NewAccessControlRepository(client, config.AccessControlURL, tokens),
		NotifyRepository:        NewNotifyRepository(client, config.NotifyURL, tokens),
		DocRenderRepository:     NewDocRenderRepository(client, config.DocRenderURL, tokens),
		UserInfoRepository:      NewUserInfoRepository(client, config.IdentityURL),
		ServiceTokenRepository:  tokens,
		Clock:                   c,
	}
}
