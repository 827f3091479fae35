package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-key", "bluecarbon", "bluecarbon-api")

	token, err := svc.GenerateAccessToken(domain.AccountID("alice"), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Account)
	assert.Equal(t, "bluecarbon", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-key", "bluecarbon", "bluecarbon-api")

	token, err := svc.GenerateAccessToken(domain.AccountID("alice"), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuing := NewJWTService("key-one", "bluecarbon", "bluecarbon-api")
	validating := NewJWTService("key-two", "bluecarbon", "bluecarbon-api")

	token, err := issuing.GenerateAccessToken(domain.AccountID("alice"), time.Hour)
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-key", "bluecarbon", "bluecarbon-api")

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestMiddlewareAdapter(t *testing.T) {
	svc := NewJWTService("test-key", "bluecarbon", "bluecarbon-api")
	adapter := NewMiddlewareAdapter(svc)

	token, err := svc.GenerateAccessToken(domain.AccountID("carol"), time.Hour)
	require.NoError(t, err)

	claims, err := adapter.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "carol", claims.Account)
}
