// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"errors"
	"strings"

	"cypher/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	LocalClaims = "claims"
	LocalUserID = "userID"
)

// AuthMiddleware attaches the caller's identity to the request when a bearer
// token is present. Requests without a token continue anonymously.
type AuthMiddleware struct {
	secret []byte
	logger *zap.Logger
}

func NewAuthMiddleware(secret string, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{
		secret: []byte(secret),
		logger: logger.With(zap.String("component", "auth")),
	}
}

// Enabled reports whether tokens can be verified.
func (m *AuthMiddleware) Enabled() bool {
	return len(m.secret) > 0
}

// OptionalAuth validates a bearer token if one is sent. A missing header
// leaves the request anonymous; a bad token is rejected with 401.
func (m *AuthMiddleware) OptionalAuth(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !m.Enabled() {
		c.Locals(LocalUserID, models.AnonymousUserID)
		return c.Next()
	}

	// Check if the header has the Bearer prefix
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.parse(tokenString)
	if err != nil {
		m.logger.Debug("token rejected", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(LocalClaims, claims)
	c.Locals(LocalUserID, claims.UserID())
	return c.Next()
}

func (m *AuthMiddleware) parse(tokenString string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// UserID returns the id set by OptionalAuth, or the anonymous id.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalUserID).(string); ok && id != "" {
		return id
	}
	return models.AnonymousUserID
}
