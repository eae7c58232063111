// Package googleauth verifies Google-issued ID tokens.
//
// Verification delegates to Google's tokeninfo endpoint, which validates
// the token signature and expiry server-side; the audience check against
// our OAuth client id happens here.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Verification error kinds. Invalid tokens and audience mismatches are
// caller errors; provider failures are not, and must not be conflated.
var (
	ErrInvalidToken        = errors.New("invalid Google token")
	ErrAudienceMismatch    = errors.New("token audience mismatch")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

const (
	clientTimeout         = 10 * time.Second
	dialTimeout           = 5 * time.Second
	tlsHandshakeTimeout   = 5 * time.Second
	responseHeaderTimeout = 5 * time.Second
)

// UserInfo is the identity extracted from a verified ID token.
type UserInfo struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// tokenInfoResponse mirrors the fields we consume from Google's
// tokeninfo endpoint. Numeric-ish fields arrive as strings.
type tokenInfoResponse struct {
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Client verifies ID tokens against a fixed OAuth client id.
type Client struct {
	httpClient   *http.Client
	tokenInfoURL string
	clientID     string
}

// NewClient creates a verification client. tokenInfoURL is Google's
// tokeninfo endpoint; overridable for tests.
func NewClient(tokenInfoURL, clientID string) *Client {
	return &Client{
		httpClient:   newHTTPClient(),
		tokenInfoURL: tokenInfoURL,
		clientID:     clientID,
	}
}

// newHTTPClient builds an HTTP client with bounded timeouts so a slow
// identity provider cannot stall login requests indefinitely.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: clientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ResponseHeaderTimeout: responseHeaderTimeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// VerifyIDToken verifies an ID token and returns the identity it carries.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*UserInfo, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}

	reqURL := c.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Google rejects malformed or expired ID tokens with a 4xx.
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("%w: tokeninfo returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: malformed tokeninfo response", ErrProviderUnavailable)
	}

	if info.Aud != c.clientID {
		return nil, ErrAudienceMismatch
	}

	if info.Sub == "" || info.Email == "" {
		return nil, ErrInvalidToken
	}

	return &UserInfo{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
