package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPageListsBusinessTypes(t *testing.T) {
	env := newTestEnv(t)

	resp := env.browser(t).get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Portfolio")
	assert.Contains(t, body, "from USD 120.00")
	assert.Contains(t, body, `href="/pricing?type=ecommerce"`)
}

func TestFeaturesPageListsTierPrices(t *testing.T) {
	env := newTestEnv(t)

	resp := env.browser(t).get("/features")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Static Page")
	assert.Contains(t, body, "USD 22.00")
}
