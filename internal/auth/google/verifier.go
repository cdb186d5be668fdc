// Package google verifies Google ID tokens against the tokeninfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var (
	errAudience        = errors.New("audience mismatch")
	errIssuer          = errors.New("unexpected issuer")
	errNoSubject       = errors.New("token has no subject")
	errEmailUnverified = errors.New("email not verified")
)

// claimBool decodes a boolean that tokeninfo may send as "true" or true.
type claimBool bool

func (b *claimBool) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*b = claimBool(v)
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = claimBool(v)
	return nil
}

type tokenInfo struct {
	Iss           string    `json:"iss"`
	Aud           string    `json:"aud"`
	Sub           string    `json:"sub"`
	Email         string    `json:"email"`
	EmailVerified claimBool `json:"email_verified"`
}

// validate checks the claims that tokeninfo does not enforce itself. Upload
// records are keyed by email, so an email Google has not verified is refused.
func (ti *tokenInfo) validate(clientID string) error {
	switch {
	case ti.Aud != clientID:
		return errAudience
	case ti.Iss != "accounts.google.com" && ti.Iss != "https://accounts.google.com":
		return errIssuer
	case ti.Sub == "":
		return errNoSubject
	case ti.Email != "" && !bool(ti.EmailVerified):
		return errEmailUnverified
	}
	return nil
}

// Verifier validates Google ID tokens issued to one OAuth client.
type Verifier struct {
	clientID   string
	endpoint   string
	httpClient *http.Client
}

// NewVerifier creates a verifier that calls Google's public tokeninfo endpoint.
func NewVerifier(clientID string) *Verifier {
	return NewVerifierWithEndpoint(clientID, tokenInfoURL, &http.Client{
		Timeout: 10 * time.Second,
	})
}

// NewVerifierWithEndpoint creates a verifier that calls a custom tokeninfo endpoint.
func NewVerifierWithEndpoint(clientID, endpoint string, httpClient *http.Client) *Verifier {
	return &Verifier{
		clientID:   clientID,
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (v *Verifier) VerifyToken(ctx context.Context, idToken string) (*domain.Identity, error) {
	info, err := v.fetch(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if err := info.validate(v.clientID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return &domain.Identity{UID: info.Sub, Email: info.Email}, nil
}

func (v *Verifier) fetch(ctx context.Context, idToken string) (*tokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?id_token="+url.QueryEscape(idToken), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding tokeninfo: %w", err)
	}
	return &info, nil
}

func (v *Verifier) Provider() string {
	return string(domain.AuthProviderGoogle)
}

var _ port.IdentityVerifier = (*Verifier)(nil)
