// Package auth verifies bearer tokens and checks the permissions they carry.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"
)

const (
	CodeHeaderMissing = "authorization_header_missing"
	CodeInvalidHeader = "invalid_header"
	CodeTokenExpired  = "token_expired"
	CodeInvalidClaims = "invalid_claims"
	CodeUnauthorized  = "unauthorized"
)

// TokenVerifier turns a raw bearer token into a Principal.
// Failures are *domain.AuthError.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Principal, error)
}

// NewVerifier builds the verifier selected by cfg.Mode.
func NewVerifier(cfg config.AuthConfig) (TokenVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeHS256:
		if cfg.SecretKey == "" {
			return nil, fmt.Errorf("auth.secret_key is required for mode %s", cfg.Mode)
		}
		return NewHMACVerifier(cfg), nil
	case config.AuthModeAuth0:
		return NewAuth0Verifier(cfg)
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Mode)
	}
}

// TokenFromHeader extracts the token from an "Authorization: Bearer <token>" header value.
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", domain.NewAuthError(http.StatusUnauthorized, CodeHeaderMissing, "Authorization header is expected.")
	}
	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", domain.NewAuthError(http.StatusUnauthorized, CodeInvalidHeader, "Authorization header must start with \"Bearer\".")
	case len(parts) == 1:
		return "", domain.NewAuthError(http.StatusUnauthorized, CodeInvalidHeader, "Token not found.")
	case len(parts) > 2:
		return "", domain.NewAuthError(http.StatusUnauthorized, CodeInvalidHeader, "Authorization header must be bearer token.")
	}
	return parts[1], nil
}

// CheckPermission fails with 400 when the token carried no permissions claim at all
// and with 403 when permission is not among the granted ones.
func CheckPermission(principal *domain.Principal, permission string) error {
	if principal == nil || principal.Permissions == nil {
		return domain.NewAuthError(http.StatusBadRequest, CodeInvalidClaims, "Permissions not included in JWT.")
	}
	if !principal.HasPermission(permission) {
		return domain.NewAuthError(http.StatusForbidden, CodeUnauthorized, "Permission not found.")
	}
	return nil
}

// permissionClaims is the part of the token payload both verifiers read.
type permissionClaims struct {
	Permissions []string `json:"permissions,omitempty"`
	Scope       string   `json:"scope,omitempty"`
}

// granted returns nil when neither claim is present.
func (c permissionClaims) granted() []string {
	if c.Permissions != nil {
		return c.Permissions
	}
	if c.Scope != "" {
		return strings.Fields(c.Scope)
	}
	return nil
}

func errExpired() error {
	return domain.NewAuthError(http.StatusUnauthorized, CodeTokenExpired, "Token expired.")
}

func errBadClaims() error {
	return domain.NewAuthError(http.StatusUnauthorized, CodeInvalidClaims, "Incorrect claims. Please, check the audience and issuer.")
}

func errUnparsable() error {
	return domain.NewAuthError(http.StatusBadRequest, CodeInvalidHeader, "Unable to parse authentication token.")
}
