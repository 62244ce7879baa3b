package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trivia-coffee/internal/auth"
	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID())
	app.Use(Metrics("test"))
	app.Use(RequestLogger())
	return app
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/bad", func(c *fiber.Ctx) error { return domain.NewBadRequestError("nope") })
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewQuestionNotFoundError(9) })
	app.Get("/unprocessable", func(c *fiber.Ctx) error {
		return domain.NewUnprocessableError("insert failed", errors.New("fk"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error { return domain.NewInternalError("db down", nil) })
	app.Get("/unknown", func(c *fiber.Ctx) error { return errors.New("surprise") })
	app.Get("/auth", func(c *fiber.Ctx) error {
		return domain.NewAuthError(http.StatusForbidden, auth.CodeUnauthorized, "Permission not found.")
	})

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
		code    string
	}{
		{name: "bad request", method: http.MethodGet, path: "/bad", status: 400, message: "bad request"},
		{name: "not found", method: http.MethodGet, path: "/missing", status: 404, message: "resource not found"},
		{name: "unprocessable", method: http.MethodGet, path: "/unprocessable", status: 422, message: "unprocessable entity"},
		{name: "internal", method: http.MethodGet, path: "/internal", status: 500, message: "internal server error"},
		{name: "unknown error", method: http.MethodGet, path: "/unknown", status: 500, message: "internal server error"},
		{name: "auth error", method: http.MethodGet, path: "/auth", status: 403, message: "Permission not found.", code: auth.CodeUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/nowhere", status: 404, message: "resource not found"},
		{name: "wrong method", method: http.MethodPost, path: "/bad", status: 405, message: "method not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeError(t, resp)
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Error)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 26)
}

func TestValidateIDParam(t *testing.T) {
	app := newTestApp()
	app.Get("/items/:id", ValidateIDParam("id"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": ParamID(c)})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"id":42}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type stubVerifier struct {
	principal *domain.Principal
	err       error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	return s.principal, s.err
}

func TestRequiresPermission(t *testing.T) {
	const secret = "middleware-secret"
	verifier := auth.NewHMACVerifier(config.AuthConfig{Mode: config.AuthModeHS256, SecretKey: secret})

	mint := func(perms ...string) string {
		token, err := auth.NewHS256Token(secret, auth.TokenOptions{Subject: "barista", Permissions: perms, TTL: time.Hour})
		require.NoError(t, err)
		return token
	}

	reached := false
	app := newTestApp()
	app.Get("/drinks-detail", RequiresPermission(verifier, domain.PermissionGetDrinksDetail), func(c *fiber.Ctx) error {
		reached = true
		assert.Equal(t, "barista", GetPrincipal(c).Subject)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name        string
		header      string
		status      int
		code        string
		wantReached bool
	}{
		{name: "no header", header: "", status: 401, code: auth.CodeHeaderMissing},
		{name: "not bearer", header: "Token abc", status: 401, code: auth.CodeInvalidHeader},
		{name: "garbage token", header: "Bearer abc", status: 400, code: auth.CodeInvalidHeader},
		{name: "no permissions claim", header: "Bearer " + mint(), status: 400, code: auth.CodeInvalidClaims},
		{name: "missing permission", header: "Bearer " + mint(domain.PermissionPostDrinks), status: 403, code: auth.CodeUnauthorized},
		{name: "granted", header: "Bearer " + mint(domain.PermissionGetDrinksDetail), status: 200, wantReached: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/drinks-detail", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantReached, reached)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, resp).Code)
			}
		})
	}
}

func TestRequiresPermission_VerifierErrorStopsChain(t *testing.T) {
	app := newTestApp()
	reached := false
	verifier := stubVerifier{err: domain.NewAuthError(http.StatusUnauthorized, auth.CodeTokenExpired, "Token expired.")}
	app.Delete("/drinks/:id", RequiresPermission(verifier, domain.PermissionDeleteDrinks), func(c *fiber.Ctx) error {
		reached = true
		return nil
	})

	req := httptest.NewRequest(http.MethodDelete, "/drinks/1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer whatever")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, auth.CodeTokenExpired, decodeError(t, resp).Code)
	assert.False(t, reached)
}

func TestMetricsHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", MetricsHandler())

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "triviacoffee_http_requests_total"))
}
