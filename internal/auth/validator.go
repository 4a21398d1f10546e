// Bearer-token validation backed by the HS256 JWT manager.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/transrodar/backend/internal/security"
)

// ErrInvalidToken is returned for empty or unverifiable tokens.
var ErrInvalidToken = errors.New("invalid token")

// JWTValidator implements middleware.TokenValidator over security.JWTManager.
type JWTValidator struct {
	manager *security.JWTManager
}

func NewJWTValidator(manager *security.JWTManager) *JWTValidator {
	return &JWTValidator{manager: manager}
}

// ValidateToken verifies the access token and returns its subject and role.
func (v *JWTValidator) ValidateToken(ctx context.Context, token string) (userID string, role string, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", ErrInvalidToken
	}
	uid, r, err := v.manager.ParseAccess(token)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	return uid.String(), r, nil
}
