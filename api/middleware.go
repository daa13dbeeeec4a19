package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/utils"
)

type userInfoProvider interface {
	GetUserInfo(ctx context.Context, bearerToken string) (models.UserInfo, error)
}

// authentication resolves the bearer token with the identity provider and
// stores the caller's credentials in the request context.
func authentication(users userInfoProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearerToken, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || bearerToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userInfo, err := users.GetUserInfo(c.Request.Context(), bearerToken)
		if err != nil {
			presentError(c, err)
			c.Abort()
			return
		}

		ctx := utils.StoreCredentialsInContext(c.Request.Context(), userInfo.Credentials(bearerToken))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func credentials(c *gin.Context) (models.Credentials, bool) {
	creds, found := utils.CredentialsFromContext(c.Request.Context())
	if !found {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no credentials in context"})
	}
	return creds, found
}
