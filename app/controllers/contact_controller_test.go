package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/StudioSite/internal/pkg/contact"
)


func TestContactAPIReportsEveryError(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/api/v1/contact", `{"name":"A","email":"bad","service":"","message":"short"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got contact.Result
	require.NoError(t, decodeJSON(resp, &got))
	assert.False(t, got.Valid)
	assert.Len(t, got.Errors, 4)

	count, err := env.repos.ContactRequest.Count("")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestContactAPIStoresLead(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/api/v1/contact", `{
		"name": " Ada Lovelace ",
		"email": "ada@example.com",
		"service": "Web Development",
		"message": "We need a new website for our bakery.",
		"quote_uuid": "not-a-uuid"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
		ID     uint     `json:"id"`
	}
	require.NoError(t, decodeJSON(resp, &got))
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
	assert.Equal(t, uint(1), got.ID)

	lead, err := env.repos.ContactRequest.GetByID(got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", lead.Name)
	assert.Equal(t, "new", lead.Status)
	assert.Empty(t, lead.QuoteUUID)
}

func TestContactAPIRejectsBadJSON(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/api/v1/contact", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	require.NoError(t, decodeJSON(resp, &got))
	assert.Equal(t, "bad_request", got["error"])
}

func TestContactFormRendersServices(t *testing.T) {
	env := newTestEnv(t)

	resp := env.browser(t).get("/contact?service=SEO&quote=abc")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `<option value="SEO" selected>SEO</option>`)
	assert.Contains(t, body, `name="quote_uuid" value="abc"`)
}

func TestContactFormPost(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp := b.postForm("/contact", url.Values{"name": {"A"}, "email": {"bad"}, "message": {"short"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Name must be between 2 and 100 characters")
	assert.Contains(t, body, "Service is required")

	resp = b.postForm("/contact", url.Values{
		"name":       {"Ada Lovelace"},
		"email":      {"ada@example.com"},
		"service":    {"Branding"},
		"message":    {"Please refresh our logo and colours."},
		"quote_uuid": {"0b6f1b8e-5d4c-4b7a-9a3e-2f1d8c7b6a51"},
	})
	assert.Equal(t, "/contact", resp.Header.Get("Location"))

	leads, err := env.repos.ContactRequest.List("", 0, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Branding", leads[0].Service)
	assert.Equal(t, "0b6f1b8e-5d4c-4b7a-9a3e-2f1d8c7b6a51", leads[0].QuoteUUID)
}
