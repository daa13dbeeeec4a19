package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentribunal/casework-backend/repositories/clock"
)

func TestServiceToken(t *testing.T) {
	signingKey := []byte("test-signing-key")
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := NewServiceTokenRepository("casework-backend", signingKey, 4*time.Hour, clock.NewMock(now))

	token, err := repo.ServiceToken(context.Background())
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)

	assert.Equal(t, "casework-backend", claims.Issuer)
	assert.Equal(t, "casework-backend", claims.Subject)
	// The parsed expiry comes back in the local location; compare instants.
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(4*time.Hour)))
}

func TestServiceToken_ReusesTheCachedToken(t *testing.T) {
	repo := NewServiceTokenRepository("casework-backend", []byte("test-signing-key"),
		4*time.Hour, clock.New())

	first, err := repo.ServiceToken(context.Background())
	require.NoError(t, err)
	second, err := repo.ServiceToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
