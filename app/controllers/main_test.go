package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/StudioSite/internal/pkg/session"
	"github.com/ManuelReschke/StudioSite/internal/pkg/statistics"
)

type testEnv struct {
	app   *fiber.App
	repos *repository.Repositories
	stats *statistics.Service
}

// newTestEnv wires every controller against in-memory repositories, an
// in-memory session store and the built-in catalog. CSRF is left out.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	session.NewMemorySessionStore()

	repos := repository.NewMemoryRepositories()
	stats := statistics.NewServiceWithStore(&repository.StatisticsCounter{Leads: repos.ContactRequest, Quotes: repos.Quote}, statistics.NewMemoryStore())

	pages := NewPageController(catalog.Default)
	pc := NewPricingController(repos.Quote, catalog.Default)
	cc := NewContactController(repos.ContactRequest, nil, hcaptcha.NewVerifier(""))
	cc.onCreated = stats.Invalidate
	qc := NewQuoteAPIController(repos.Quote, catalog.Default)
	alc := NewAdminLeadController(repos, stats)

	app.Get("/", pages.HandleStart)
	app.Get("/features", pages.HandleFeatures)
	app.Get("/pricing", pc.HandlePricing)
	app.Post("/pricing/business-type", pc.HandleBusinessType)
	app.Post("/pricing/select", pc.HandleSelect)
	app.Post("/pricing/clear", pc.HandleClear)
	app.Post("/pricing/pages/add", pc.HandlePageAdd)
	app.Post("/pricing/pages/remove", pc.HandlePageRemove)
	app.Post("/pricing/pages/rename", pc.HandlePageRename)
	app.Post("/pricing/reset", pc.HandleReset)
	app.Post("/pricing/save", pc.HandleSave)
	app.Get("/quote/:uuid", pc.HandleQuoteView)
	app.Get("/contact", cc.HandleContact)
	app.Post("/contact", cc.HandleContactPost)
	app.Post("/api/v1/contact", cc.HandleContactAPI)
	app.Get("/api/v1/catalog", qc.HandleCatalog)
	app.Get("/api/v1/business-types/:key/state", qc.HandleBusinessTypeState)
	app.Post("/api/v1/quotes/calculate", qc.HandleCalculate)
	app.Post("/api/v1/quotes", qc.HandleCreate)
	app.Get("/api/v1/quotes/:uuid", qc.HandleGet)
	app.Get("/admin/leads", alc.HandleLeads)
	app.Post("/admin/leads/:id/status", alc.HandleLeadStatus)
	app.Post("/admin/leads/:id/delete", alc.HandleLeadDelete)

	return &testEnv{app: app, repos: repos, stats: stats}
}

// browser keeps the session cookie between requests.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func (e *testEnv) browser(t *testing.T) *browser {
	return &browser{t: t, app: e.app, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) *http.Response {
	b.t.Helper()
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func (b *browser) get(target string) *http.Response {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) postForm(target string, form url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return b.do(req)
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func decodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
