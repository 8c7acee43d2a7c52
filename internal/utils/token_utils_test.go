package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "owner@acme.test", testSecret, time.Hour, "bizbooks-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "owner@acme.test", claims.Email)
	assert.Equal(t, "bizbooks-test", claims.Issuer)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "owner@acme.test", testSecret, -time.Minute, "bizbooks-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "owner@acme.test", testSecret, time.Hour, "bizbooks-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_RejectsNoneAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestGenerateDocumentNumber(t *testing.T) {
	now := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	number, err := utils.GenerateDocumentNumber("INV", now)
	require.NoError(t, err)
	assert.Regexp(t, `^INV-20260309-[0-9A-F]{8}$`, number)
}
