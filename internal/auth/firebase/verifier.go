// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"fmt"

	gooidc "github.com/coreos/go-oidc/v3/oidc"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

const (
	issuerPrefix = "https://securetoken.google.com/"
	// Public keys for tokens minted by Firebase Authentication.
	jwksURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Verifier validates Firebase ID tokens for one project.
type Verifier struct {
	verifier *gooidc.IDTokenVerifier
}

// NewVerifier creates a verifier that fetches signing keys from Google.
// Keys are loaded lazily on first verification.
func NewVerifier(ctx context.Context, projectID string) *Verifier {
	return NewVerifierWithKeySet(projectID, gooidc.NewRemoteKeySet(ctx, jwksURL))
}

// NewVerifierWithKeySet creates a verifier backed by the given key set.
func NewVerifierWithKeySet(projectID string, keySet gooidc.KeySet) *Verifier {
	return &Verifier{
		verifier: gooidc.NewVerifier(issuerPrefix+projectID, keySet, &gooidc.Config{
			ClientID: projectID,
		}),
	}
}

func (v *Verifier) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	idt, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	var claims tokenClaims
	if err := idt.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: parsing claims: %v", domain.ErrInvalidToken, err)
	}

	uid := idt.Subject
	if uid == "" {
		uid = claims.UserID
	}
	if uid == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrInvalidToken)
	}

	return &domain.Identity{UID: uid, Email: claims.Email}, nil
}

func (v *Verifier) Provider() string {
	return string(domain.AuthProviderFirebase)
}

// Compile-time check.
var _ port.IdentityVerifier = (*Verifier)(nil)
