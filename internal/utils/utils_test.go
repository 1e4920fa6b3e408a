package utils_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("u-1", "secret", time.Minute, "finance-tracker")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "finance-tracker", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("u-1", "secret", -time.Minute, "finance-tracker")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_RejectsNone(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(unsigned, "secret")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, utils.CheckPasswordHash("correct horse", hash))
	assert.False(t, utils.CheckPasswordHash("battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("correct horse", ""))
}

func TestPosthogWrapper_DisabledWithoutKey(t *testing.T) {
	w := utils.InitializePosthogClient("", "", slog.Default())
	assert.False(t, w.IsInitialized())
	w.Enqueue("u-1", "post_transactions", nil)
	w.Close()

	var nilWrapper *utils.PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
}
