package hcaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
)

const verifyURL = "https://hcaptcha.com/siteverify"

var ErrEmptyToken = errors.New("hCaptcha token is empty")

type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

// NewVerifier returns a verifier for secret. With an empty secret every
// token passes, which keeps local setups usable without an hCaptcha account.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: verifyURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func NewVerifierFromEnv() *Verifier {
	return NewVerifier(env.GetEnv("HCAPTCHA_SECRET", ""))
}

func (v *Verifier) Enabled() bool {
	return v != nil && v.secret != ""
}

func (v *Verifier) Verify(ctx context.Context, token string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return ErrEmptyToken
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build hCaptcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to hCaptcha API: %w", err)
	}
	defer resp.Body.Close()

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode hCaptcha API response: %w", err)
	}

	if !response.Success {
		if len(response.ErrorCodes) > 0 {
			return fmt.Errorf("hCaptcha validation failed: %s", strings.Join(response.ErrorCodes, ", "))
		}
		return errors.New("hCaptcha validation failed")
	}
	return nil
}
