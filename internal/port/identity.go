package port

import (
	"context"

	"cidgate/internal/domain"
)

// IdentityVerifier validates a bearer token issued by an identity provider.
// Any failure (malformed, expired, bad signature, wrong audience) is reported
// as an error; callers do not distinguish between them.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
	Provider() string
}
