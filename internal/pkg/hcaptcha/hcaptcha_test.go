package hcaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVerifier(t *testing.T, body string) *Verifier {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "s3cret", r.PostForm.Get("secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	v := NewVerifier("s3cret")
	v.endpoint = srv.URL
	return v
}

func TestVerifyDisabledWithoutSecret(t *testing.T) {
	v := NewVerifier("")

	assert.False(t, v.Enabled())
	assert.NoError(t, v.Verify(context.Background(), ""))
}

func TestVerifyRequiresToken(t *testing.T) {
	assert.ErrorIs(t, NewVerifier("s3cret").Verify(context.Background(), ""), ErrEmptyToken)
}

func TestVerifySuccess(t *testing.T) {
	v := testVerifier(t, `{"success":true}`)

	assert.NoError(t, v.Verify(context.Background(), "token"))
}

func TestVerifyFailureListsErrorCodes(t *testing.T) {
	v := testVerifier(t, `{"success":false,"error-codes":["invalid-input-response"]}`)

	assert.EqualError(t, v.Verify(context.Background(), "token"), "hCaptcha validation failed: invalid-input-response")
}
