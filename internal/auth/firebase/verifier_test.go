package firebase_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cidgate/internal/auth/firebase"
	"cidgate/internal/domain"
)

const projectID = "demo-project"

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":     "https://securetoken.google.com/" + projectID,
		"aud":     projectID,
		"sub":     "uid-123",
		"user_id": "uid-123",
		"email":   "alice@example.com",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	}
}

func newVerifier(key *rsa.PrivateKey) *firebase.Verifier {
	return firebase.NewVerifierWithKeySet(projectID, &gooidc.StaticKeySet{
		PublicKeys: []crypto.PublicKey{&key.PublicKey},
	})
}

func TestVerifier_ValidToken(t *testing.T) {
	key := newKey(t)
	v := newVerifier(key)

	identity, err := v.VerifyToken(context.Background(), sign(t, key, validClaims()))

	require.NoError(t, err)
	assert.Equal(t, "uid-123", identity.UID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "firebase", v.Provider())
}

func TestVerifier_Rejects(t *testing.T) {
	key := newKey(t)
	other := newKey(t)

	tests := []struct {
		name  string
		token func() string
	}{
		{"expired", func() string {
			c := validClaims()
			c["exp"] = time.Now().Add(-time.Hour).Unix()
			return sign(t, key, c)
		}},
		{"wrong audience", func() string {
			c := validClaims()
			c["aud"] = "someone-else"
			return sign(t, key, c)
		}},
		{"wrong issuer", func() string {
			c := validClaims()
			c["iss"] = "https://accounts.google.com"
			return sign(t, key, c)
		}},
		{"foreign key", func() string { return sign(t, other, validClaims()) }},
		{"garbage", func() string { return "not-a-jwt" }},
	}

	v := newVerifier(key)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := v.VerifyToken(context.Background(), tt.token())
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domain.ErrInvalidToken))
		})
	}
}
