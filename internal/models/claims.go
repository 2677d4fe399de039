package models

import "github.com/golang-jwt/jwt/v5"

// AnonymousUserID owns scans and settings made without a bearer token.
const AnonymousUserID = "anonymous"

// UserClaims are the claims carried by bearer tokens issued to the app.
// The subject is the user id that scans and settings are filed under.
type UserClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// UserID returns the token subject or AnonymousUserID when it is empty.
func (c *UserClaims) UserID() string {
	if c == nil || c.Subject == "" {
		return AnonymousUserID
	}
	return c.Subject
}
