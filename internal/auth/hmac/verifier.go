// Package hmac verifies HS256 tokens signed with a shared secret. It stands
// in for a managed identity provider in development and integration setups.
package hmac

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

// Claims is the token payload: the subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Verifier validates HS256 tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a verifier. An empty issuer disables the issuer check.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Sign mints a token for uid and email valid for ttl.
func (v *Verifier) Sign(uid, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *Verifier) VerifyToken(_ context.Context, tokenString string) (*domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrInvalidToken)
	}

	return &domain.Identity{UID: claims.Subject, Email: claims.Email}, nil
}

func (v *Verifier) Provider() string {
	return string(domain.AuthProviderHMAC)
}

// Compile-time check.
var _ port.IdentityVerifier = (*Verifier)(nil)
