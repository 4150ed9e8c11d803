package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
)

// KeyAdminUser is the Locals key holding the authenticated admin name.
const KeyAdminUser = "admin_user"

// RequireAdmin protects the admin area with HTTP basic auth. The password is
// checked against a bcrypt hash; without a configured hash nobody gets in.
func RequireAdmin(user, passwordHash string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm:           "Studio Admin",
		ContextUsername: KeyAdminUser,
		Authorizer: func(u, p string) bool {
			if passwordHash == "" || user == "" {
				return false
			}
			if subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)) == nil
		},
	})
}

// RequireAdminFromEnv reads ADMIN_USER and ADMIN_PASSWORD_HASH.
func RequireAdminFromEnv() fiber.Handler {
	return RequireAdmin(env.GetEnv("ADMIN_USER", "admin"), env.GetEnv("ADMIN_PASSWORD_HASH", ""))
}
