package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/logger"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"
)

// auth0Claims receives the custom part of an Auth0 access token.
type auth0Claims struct {
	permissionClaims
}

func (c *auth0Claims) Validate(ctx context.Context) error {
	return nil
}

// Auth0Verifier validates RS256 tokens against the tenant JWKS.
type Auth0Verifier struct {
	validator *validator.Validator
}

func NewAuth0Verifier(cfg config.AuthConfig) (*Auth0Verifier, error) {
	issuer := cfg.IssuerURL()
	issuerURL, err := url.Parse(issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse issuer URL: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	v, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(cfg.ClockSkew),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &auth0Claims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the validator: %w", err)
	}
	return &Auth0Verifier{validator: v}, nil
}

func (v *Auth0Verifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	result, err := v.validator.ValidateToken(ctx, token)
	if err != nil {
		logger.Get().Warn("encountered error while validating JWT", zap.Error(err))
		return nil, classifyValidatorError(err)
	}

	validated, ok := result.(*validator.ValidatedClaims)
	if !ok {
		return nil, errUnparsable()
	}
	principal := &domain.Principal{Subject: validated.RegisteredClaims.Subject}
	if custom, ok := validated.CustomClaims.(*auth0Claims); ok {
		principal.Permissions = custom.granted()
	}
	return principal, nil
}

// classifyValidatorError maps the validator's errors onto AuthErrors.
// The validator wraps go-jose claim errors, which are matched by their text.
func classifyValidatorError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "token is expired"):
		return errExpired()
	case strings.Contains(msg, "invalid audience claim"), strings.Contains(msg, "invalid issuer claim"):
		return errBadClaims()
	default:
		return errUnparsable()
	}
}
