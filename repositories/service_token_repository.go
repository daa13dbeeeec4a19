package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/opentribunal/casework-backend/repositories/clock"
)

// ServiceTokenRepository mints the service-to-service tokens that accompany
// every outbound call. Minted tokens are cached for slightly less than
// their lifetime; the cache is a pure optimization and carries no
// correctness weight.
type ServiceTokenRepository struct {
	serviceName string
	signingKey  []byte
	lifetime    time.Duration
	clock       clock.Clock

	mu    sync.Mutex
	cache *expirable.LRU[string, string]
}

func NewServiceTokenRepository(serviceName string, signingKey []byte, lifetime time.Duration, c clock.Clock) *ServiceTokenRepository {
	cacheTTL := lifetime - lifetime/10
	return &ServiceTokenRepository{
		serviceName: serviceName,
		signingKey:  signingKey,
		lifetime:    lifetime,
		clock:       c,
		cache:       expirable.NewLRU[string, string](1, nil, cacheTTL),
	}
}

func (repo *ServiceTokenRepository) ServiceToken(ctx context.Context) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if token, ok := repo.cache.Get(repo.serviceName); ok {
		return token, nil
	}

	now := repo.clock.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    repo.serviceName,
		Subject:   repo.serviceName,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(repo.lifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(repo.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "can't sign service token")
	}
	repo.cache.Add(repo.serviceName, token)
	return token, nil
}
