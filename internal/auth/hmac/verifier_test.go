package hmac_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cidgate/internal/auth/hmac"
	"cidgate/internal/domain"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := hmac.NewVerifier("s3cret", "cidgate")

	token, err := v.Sign("uid-1", "bob@example.com", time.Minute)
	require.NoError(t, err)

	identity, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{UID: "uid-1", Email: "bob@example.com"}, identity)
}

func TestVerifier_Expired(t *testing.T) {
	v := hmac.NewVerifier("s3cret", "cidgate")
	token, err := v.Sign("uid-1", "bob@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = v.VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerifier_WrongSecret(t *testing.T) {
	token, err := hmac.NewVerifier("other", "cidgate").Sign("uid-1", "bob@example.com", time.Minute)
	require.NoError(t, err)

	_, err = hmac.NewVerifier("s3cret", "cidgate").VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerifier_WrongIssuer(t *testing.T) {
	token, err := hmac.NewVerifier("s3cret", "elsewhere").Sign("uid-1", "bob@example.com", time.Minute)
	require.NoError(t, err)

	_, err = hmac.NewVerifier("s3cret", "cidgate").VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerifier_RejectsNoneAlg(t *testing.T) {
	claims := jwt.MapClaims{"sub": "uid-1", "exp": time.Now().Add(time.Minute).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = hmac.NewVerifier("s3cret", "").VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerifier_MissingSubject(t *testing.T) {
	token, err := hmac.NewVerifier("s3cret", "").Sign("", "bob@example.com", time.Minute)
	require.NoError(t, err)

	_, err = hmac.NewVerifier("s3cret", "").VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}
