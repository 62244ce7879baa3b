// Command gettoken prints a bearer token for the coffee shop API.
//
// In hs256 mode it signs a token locally with the configured secret:
//
//	gettoken -permissions get:drinks-detail,post:drinks
//
// In auth0 mode it runs the OAuth2 client-credentials flow against the tenant,
// using auth.client_id and auth.client_secret.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"trivia-coffee/internal/auth"
	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"

	"golang.org/x/oauth2/clientcredentials"
)

func main() {
	permissions := flag.String("permissions", strings.Join(allPermissions, ","), "comma separated permissions (hs256 only)")
	subject := flag.String("subject", "dev|barista", "token subject (hs256 only)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime (hs256 only)")
	flag.Parse()

	cfg, err := config.LoadConfig(config.ServiceCoffee)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var token string
	switch {
	case cfg.Auth.Mode == config.AuthModeAuth0:
		token, err = fetchClientCredentialsToken(context.Background(), cfg.Auth)
	case cfg.Auth.SecretKey == "":
		err = fmt.Errorf("auth.secret_key is required in hs256 mode")
	default:
		token, err = auth.NewHS256Token(cfg.Auth.SecretKey, auth.TokenOptions{
			Subject:     *subject,
			Permissions: splitPermissions(*permissions),
			Issuer:      cfg.Auth.IssuerURL(),
			Audience:    cfg.Auth.Audience,
			TTL:         *ttl,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

var allPermissions = []string{
	domain.PermissionGetDrinksDetail,
	domain.PermissionPostDrinks,
	domain.PermissionPatchDrinks,
	domain.PermissionDeleteDrinks,
}

func splitPermissions(raw string) []string {
	permissions := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			permissions = append(permissions, p)
		}
	}
	return permissions
}

func clientCredentialsConfig(cfg config.AuthConfig) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		TokenURL:       "https://" + strings.TrimSuffix(cfg.Domain, "/") + "/oauth/token",
		EndpointParams: map[string][]string{"audience": {cfg.Audience}},
	}
}

func fetchClientCredentialsToken(ctx context.Context, cfg config.AuthConfig) (string, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return "", fmt.Errorf("auth.client_id and auth.client_secret are required in auth0 mode")
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	tok, err := clientCredentialsConfig(cfg).Token(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}
