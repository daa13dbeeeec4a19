package models

// Credentials identifies the caller of one request. They are built by the
// authentication middleware and travel in the request context; the bearer
// token is forwarded on every outbound collaborator call next to a minted
// service-to-service token.
type Credentials struct {
	UserID      string
	Email       string
	Roles       []string
	BearerToken string
}

// UserInfo is the identity provider's view of the bearer token's subject.
type UserInfo struct {
	UserID string
	Email  string
	Name   string
	Roles  []string
}

func (u UserInfo) Credentials(bearerToken string) Credentials {
	return Credentials{
		UserID:      u.UserID,
		Email:       u.Email,
		Roles:       u.Roles,
		BearerToken: bearerToken,
	}
}
