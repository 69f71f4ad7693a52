package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(JWTSecret())
	require.NoError(t, err)
	return signed
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestJWTSecretFallsBackWithoutEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Equal(t, []byte("default_secret"), JWTSecret())

	t.Setenv("JWT_SECRET", "spare-key")
	assert.Equal(t, []byte("spare-key"), JWTSecret())
}

func TestJwtMiddlewareAcceptsLocallyIssuedToken(t *testing.T) {
	// Signing and verification must resolve the same key even without env.
	t.Setenv("JWT_SECRET", "")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "u1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsForeignSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	tokenStr := issueToken(t, "u1")

	t.Setenv("JWT_SECRET", "rotated-key")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
