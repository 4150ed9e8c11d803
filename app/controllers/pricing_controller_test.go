package controllers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalRow(amount string) string {
	return "<th>Total</th><td>" + amount + "</td>"
}

func TestPricingStartsWithFirstBusinessType(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp := b.get("/pricing")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Pricing calculator")
	assert.Contains(t, body, totalRow("USD 120.00"))
}

func TestPricingSelectUpgradeKeepsSessionState(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.get("/pricing")

	resp := b.postForm("/pricing/select", url.Values{"feature": {"Static Page"}, "tier": {"Advanced"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/pricing", resp.Header.Get("Location"))

	assert.Contains(t, readBody(t, b.get("/pricing")), totalRow("USD 152.00"))

	// a second visitor is unaffected
	other := env.browser(t)
	assert.Contains(t, readBody(t, other.get("/pricing")), totalRow("USD 120.00"))
}

func TestPricingAddOnAndRemoval(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	b.postForm("/pricing/select", url.Values{"feature": {"Payment Integration"}, "tier": {"Basic"}})
	assert.Contains(t, readBody(t, b.get("/pricing")), totalRow("USD 160.00"))

	b.postForm("/pricing/select", url.Values{"feature": {"Payment Integration"}, "tier": {""}})
	body := readBody(t, b.get("/pricing"))
	assert.Contains(t, body, totalRow("USD 120.00"))
	assert.Contains(t, body, "removed")
}

func TestPricingInvalidTierKeepsState(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp := b.postForm("/pricing/select", url.Values{"feature": {"Static Page"}, "tier": {"Gold"}})
	assert.Equal(t, "/pricing", resp.Header.Get("Location"))

	assert.Contains(t, readBody(t, b.get("/pricing")), totalRow("USD 120.00"))
}

func TestPricingPages(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	b.postForm("/pricing/pages/add", url.Values{"feature": {"Static Page"}, "name": {"Journal"}})
	b.postForm("/pricing/pages/rename", url.Values{"feature": {"Static Page"}, "index": {"0"}, "name": {"Start"}})
	body := readBody(t, b.get("/pricing"))
	assert.Contains(t, body, `value="Journal"`)
	assert.Contains(t, body, `value="Start"`)
	assert.NotContains(t, body, `value="Home"`)

	b.postForm("/pricing/pages/remove", url.Values{"feature": {"Static Page"}, "index": {"4"}})
	assert.NotContains(t, readBody(t, b.get("/pricing")), `value="Journal"`)

	resp := b.postForm("/pricing/pages/remove", url.Values{"feature": {"Static Page"}, "index": {"x"}})
	assert.Equal(t, "/pricing", resp.Header.Get("Location"))
}

func TestPricingBusinessTypeAndReset(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	b.postForm("/pricing/business-type", url.Values{"key": {"business"}})
	assert.Contains(t, readBody(t, b.get("/pricing")), totalRow("USD 250.00"))

	b.postForm("/pricing/reset", nil)
	assert.Contains(t, readBody(t, b.get("/pricing")), totalRow("USD 120.00"))

	assert.Contains(t, readBody(t, b.get("/pricing?type=business")), totalRow("USD 250.00"))
	assert.Contains(t, readBody(t, b.get("/pricing?type=nope")), totalRow("USD 250.00"))
}

func TestPricingSaveAndView(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.postForm("/pricing/select", url.Values{"feature": {"Static Page"}, "tier": {"Advanced"}})

	resp := b.postForm("/pricing/save", url.Values{"email": {" ada@example.com "}})
	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/quote/"), location)

	count, err := env.repos.Quote.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	saved, err := env.repos.Quote.GetByUUID(strings.TrimPrefix(location, "/quote/"))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", saved.Email)
	assert.Equal(t, int64(15200), saved.Total)

	view := b.get(location)
	require.Equal(t, http.StatusOK, view.StatusCode)
	body := readBody(t, view)
	assert.Contains(t, body, "Your quote")
	assert.Contains(t, body, totalRow("USD 152.00"))
	assert.Contains(t, body, "/contact?quote="+saved.UUID)
}

func TestQuoteViewNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.browser(t).get("/quote/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "We could not find that quote")
}
