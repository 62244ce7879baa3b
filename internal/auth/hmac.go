package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims is the payload of tokens signed with the shared secret.
type Claims struct {
	Permissions []string `json:"permissions,omitempty"`
	Scope       string   `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

type HMACVerifier struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

func NewHMACVerifier(cfg config.AuthConfig) *HMACVerifier {
	return &HMACVerifier{
		secret:   []byte(cfg.SecretKey),
		issuer:   cfg.IssuerURL(),
		audience: cfg.Audience,
		leeway:   cfg.ClockSkew,
	}
}

func (v *HMACVerifier) Verify(ctx context.Context, tokenString string) (*domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		logger.Get().Warn("JWT validation failed", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errExpired()
		case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, errBadClaims()
		default:
			return nil, errUnparsable()
		}
	}

	pc := permissionClaims{Permissions: claims.Permissions, Scope: claims.Scope}
	return &domain.Principal{Subject: claims.Subject, Permissions: pc.granted()}, nil
}

// TokenOptions describes a token minted by NewHS256Token.
type TokenOptions struct {
	Subject     string
	Permissions []string
	Issuer      string
	Audience    string
	TTL         time.Duration
}

// NewHS256Token signs a token the HMACVerifier accepts. Used by the token tool and tests.
func NewHS256Token(secret string, opts TokenOptions) (string, error) {
	now := time.Now()
	claims := Claims{
		Permissions: opts.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   opts.Subject,
			Issuer:    opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		},
	}
	if opts.Audience != "" {
		claims.Audience = jwt.ClaimStrings{opts.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
