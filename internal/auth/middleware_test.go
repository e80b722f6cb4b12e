package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

func newProtectedApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": domainErr.Code}})
		},
	})
	mw := NewMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"email": identity.Email, "name": identity.Name})
	})
	return app
}

func TestMiddleware_RejectsBadHeaders(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)
	app := newProtectedApp(t, tm)

	valid, _, err := tm.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"absent", ""},
		{"empty scheme", valid},
		{"lowercase scheme", "bearer " + valid},
		{"wrong scheme", "Token " + valid},
		{"no space", "Bearer" + valid},
		{"garbage token", "Bearer garbage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestMiddleware_AcceptsValidToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)
	app := newProtectedApp(t, tm)

	token, _, err := tm.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddleware_ErrorsAreUnauthorizedDomainErrors(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)
	mw := NewMiddleware(tm)

	app := fiber.New()
	var captured error
	app.Get("/x", func(c *fiber.Ctx) error {
		captured = mw.Handle(c)
		return nil
	})

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Basic abc")
	_, err := app.Test(req)
	require.NoError(t, err)

	require.Error(t, captured)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(captured).Code)
}
