package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/internal/pkg/contact"
)

func seedLead(t *testing.T, env *testEnv, name string) *models.ContactRequest {
	t.Helper()
	lead := models.NewContactRequest(contact.Form{
		Name:    name,
		Email:   "lead@example.com",
		Service: "SEO",
		Message: "Please help us rank for bakery searches.",
	}, "203.0.113.5", "")
	require.NoError(t, env.repos.ContactRequest.Create(lead))
	return lead
}

func TestAdminLeadsListsLeadsAndStats(t *testing.T) {
	env := newTestEnv(t)
	seedLead(t, env, "Grace Hopper")
	seedLead(t, env, "Ada Lovelace")

	resp := env.browser(t).get("/admin/leads")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Grace Hopper")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Total leads: 2")
	assert.Contains(t, body, "Today: 2")
	assert.Contains(t, body, "https://www.gravatar.com/avatar/")
}

func TestAdminLeadsFilterByStatus(t *testing.T) {
	env := newTestEnv(t)
	seedLead(t, env, "Grace Hopper")
	contacted := seedLead(t, env, "Ada Lovelace")
	require.NoError(t, env.repos.ContactRequest.UpdateStatus(contacted.ID, models.ContactStatusContacted))

	body := readBody(t, env.browser(t).get("/admin/leads?status=contacted"))
	assert.Contains(t, body, "Ada Lovelace")
	assert.NotContains(t, body, "Grace Hopper")

	// unknown filters show everything
	body = readBody(t, env.browser(t).get("/admin/leads?status=bogus"))
	assert.Contains(t, body, "Grace Hopper")
}

func TestAdminLeadStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	lead := seedLead(t, env, "Ada Lovelace")
	b := env.browser(t)

	resp := b.postForm("/admin/leads/1/status", url.Values{"status": {"closed"}})
	assert.Equal(t, "/admin/leads", resp.Header.Get("Location"))
	got, err := env.repos.ContactRequest.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusClosed, got.Status)

	b.postForm("/admin/leads/1/status", url.Values{"status": {"archived"}})
	got, err = env.repos.ContactRequest.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusClosed, got.Status)

	resp = b.postForm("/admin/leads/42/status", url.Values{"status": {"closed"}})
	assert.Equal(t, "/admin/leads", resp.Header.Get("Location"))
}

func TestAdminLeadDelete(t *testing.T) {
	env := newTestEnv(t)
	lead := seedLead(t, env, "Ada Lovelace")
	b := env.browser(t)
	assert.Contains(t, readBody(t, b.get("/admin/leads")), "Total leads: 1")

	resp := b.postForm("/admin/leads/1/delete", nil)
	assert.Equal(t, "/admin/leads", resp.Header.Get("Location"))

	_, err := env.repos.ContactRequest.GetByID(lead.ID)
	assert.True(t, isNotFound(err))
	assert.Contains(t, readBody(t, b.get("/admin/leads")), "Total leads: 0")
}
