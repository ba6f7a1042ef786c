package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExpiry = time.Hour

func TestHashService_RoundTrip(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := svc.Verify("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashService_RejectsMalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	_, err := svc.Verify("x", "not-a-hash")
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", testExpiry, "enrolld")

	token, expiry, err := svc.Generate("operator")
	require.NoError(t, err)
	assert.False(t, expiry.IsZero())

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret", testExpiry, "enrolld")
	other := NewJWTTokenService("other", testExpiry, "enrolld")

	token, _, err := svc.Generate("operator")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("secret", testExpiry, "enrolld")

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestOperatorAuth_Login(t *testing.T) {
	hashSvc := NewArgon2HashService()
	hash, err := hashSvc.Hash("hunter2")
	require.NoError(t, err)

	tokenSvc := NewJWTTokenService("secret", testExpiry, "enrolld")
	auth := NewOperatorAuthService("admin", hash, hashSvc, tokenSvc)

	token, _, err := auth.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	claims, err := tokenSvc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestOperatorAuth_WrongPassword(t *testing.T) {
	hashSvc := NewArgon2HashService()
	hash, err := hashSvc.Hash("hunter2")
	require.NoError(t, err)

	auth := NewOperatorAuthService("admin", hash, hashSvc, NewJWTTokenService("secret", testExpiry, "enrolld"))

	_, _, err = auth.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestOperatorAuth_WrongUsername(t *testing.T) {
	hashSvc := NewArgon2HashService()
	hash, err := hashSvc.Hash("hunter2")
	require.NoError(t, err)

	auth := NewOperatorAuthService("admin", hash, hashSvc, NewJWTTokenService("secret", testExpiry, "enrolld"))

	_, _, err = auth.Login(context.Background(), "intruder", "hunter2")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}
