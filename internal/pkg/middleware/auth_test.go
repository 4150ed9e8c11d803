package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminApp(t *testing.T, user, hash string) *fiber.App {
	app := fiber.New()
	app.Get("/admin", RequireAdmin(user, hash), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(KeyAdminUser).(string))
	})
	return app
}

func TestRequireAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	app := adminApp(t, "studio", string(hash))

	tests := []struct {
		name       string
		user, pass string
		want       int
	}{
		{"valid", "studio", "s3cret", fiber.StatusOK},
		{"wrong password", "studio", "nope", fiber.StatusUnauthorized},
		{"wrong user", "root", "s3cret", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			req.SetBasicAuth(tt.user, tt.pass)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequireAdminWithoutHashDeniesEveryone(t *testing.T) {
	app := adminApp(t, "studio", "")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.SetBasicAuth("studio", "")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
