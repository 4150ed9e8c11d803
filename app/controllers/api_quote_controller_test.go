package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

func getJSON(t *testing.T, env *testEnv, target string, v interface{}) int {
	t.Helper()
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	require.NoError(t, decodeJSON(resp, v))
	return resp.StatusCode
}

func TestCatalogAPI(t *testing.T) {
	env := newTestEnv(t)

	var got catalog.Catalog
	assert.Equal(t, http.StatusOK, getJSON(t, env, "/api/v1/catalog", &got))
	assert.Equal(t, "USD", got.Currency)
	assert.Len(t, got.BusinessTypes, len(catalog.Default().BusinessTypes))
}

func TestBusinessTypeStateAPI(t *testing.T) {
	env := newTestEnv(t)

	var got CalculateResponse
	assert.Equal(t, http.StatusOK, getJSON(t, env, "/api/v1/business-types/portfolio/state", &got))
	assert.Equal(t, "portfolio", got.State.BusinessType)
	assert.Equal(t, 4, got.State.PageCounts["Static Page"])
	assert.Equal(t, catalog.Money(12000), got.Quote.Total)

	var missing map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, env, "/api/v1/business-types/castle/state", &missing))
	assert.Equal(t, "not_found", missing["error"])
}

func TestCalculateAPI(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		total catalog.Money
	}{
		{
			"bundled upgrade",
			`{"state":{"business_type":"portfolio"},"actions":[
				{"type":"select_business_type","key":"portfolio"},
				{"type":"select_tier","feature":"Static Page","tier":"Advanced"}]}`,
			15200,
		},
		{
			"add-on",
			`{"state":{"business_type":"portfolio"},"actions":[
				{"type":"select_business_type","key":"portfolio"},
				{"type":"select_tier","feature":"Payment Integration","tier":"Basic"}]}`,
			16000,
		},
		{
			"page names drive the count",
			`{"state":{"business_type":"portfolio","selections":{"Static Page":"Advanced"},
				"page_counts":{"Static Page":99},"page_names":{"Static Page":["Home","About"]}}}`,
			12000 + 2*800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			resp := postJSON(t, env.app, "/api/v1/quotes/calculate", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got CalculateResponse
			require.NoError(t, decodeJSON(resp, &got))
			assert.Equal(t, tt.total, got.Quote.Total)
			assert.Equal(t, catalog.FormatMoney("USD", tt.total), got.TotalFormatted)
		})
	}
}

func TestCalculateAPIErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"bad json", `{"state":`, http.StatusBadRequest, "bad_request"},
		{"unknown business type", `{"state":{"business_type":"castle"}}`, http.StatusUnprocessableEntity, "unknown_business_type"},
		{"unknown action", `{"state":{"business_type":"portfolio"},"actions":[{"type":"explode"}]}`, http.StatusUnprocessableEntity, "unknown_action"},
		{"unknown tier", `{"state":{"business_type":"portfolio"},"actions":[{"type":"select_tier","feature":"Static Page","tier":"Gold"}]}`, http.StatusUnprocessableEntity, "unknown_tier"},
		{"not countable", `{"state":{"business_type":"portfolio"},"actions":[{"type":"add_page","feature":"Branding"}]}`, http.StatusUnprocessableEntity, "not_countable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			resp := postJSON(t, env.app, "/api/v1/quotes/calculate", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var got map[string]string
			require.NoError(t, decodeJSON(resp, &got))
			assert.Equal(t, tt.code, got["error"])
		})
	}
}

func TestCreateAndGetQuoteAPI(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/api/v1/quotes", `{"state":{"business_type":"portfolio"},"actions":[
		{"type":"select_business_type","key":"portfolio"},
		{"type":"select_tier","feature":"Static Page","tier":"Advanced"}],"email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created SavedQuoteResponse
	require.NoError(t, decodeJSON(resp, &created))
	require.NotEmpty(t, created.UUID)
	assert.Equal(t, "/quote/"+created.UUID, created.URL)
	assert.Equal(t, catalog.Money(15200), created.Quote.Total)
	assert.Equal(t, "USD 152.00", created.TotalFormatted)

	var fetched SavedQuoteResponse
	assert.Equal(t, http.StatusOK, getJSON(t, env, "/api/v1/quotes/"+created.UUID, &fetched))
	assert.Equal(t, created.UUID, fetched.UUID)
	assert.Equal(t, created.Quote.Total, fetched.Quote.Total)
	assert.Equal(t, "portfolio", fetched.State.BusinessType)

	var missing map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, env, "/api/v1/quotes/nope", &missing))
	assert.Equal(t, "not_found", missing["error"])
}
