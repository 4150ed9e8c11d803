package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/StudioSite/app/repository"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("HCAPTCHA_SECRET", "")
	repository.SetGlobalFactory(repository.NewFactoryWith(repository.NewMemoryRepositories()))

	app := fiber.New(fiber.Config{Views: html.New("../../../views", ".html")})
	setup(app, HttpRouter{memorySessions: true}, ApiRouter{})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/features", "/pricing", "/contact"} {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestFormsRequireCSRFToken(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"feature": {"Static Page"}, "tier": {"Advanced"}}
	req := httptest.NewRequest(http.MethodPost, "/pricing/select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	assert.Equal(t, http.StatusForbidden, do(t, app, req).StatusCode)
}

func TestAdminRequiresCredentials(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, req).StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	req.SetBasicAuth("admin", "anything")
	assert.Equal(t, http.StatusUnauthorized, do(t, app, req).StatusCode)
}

func TestAPISkipsCSRF(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/calculate",
		strings.NewReader(`{"state":{"business_type":"portfolio"},"actions":[{"type":"select_business_type","key":"portfolio"}]}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	assert.Equal(t, http.StatusOK, do(t, app, req).StatusCode)
}

func TestAPIPing(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIRateLimit(t *testing.T) {
	t.Setenv("API_RATE_LIMIT", "2")
	app := newTestApp(t)

	for i := 0; i < 2; i++ {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
