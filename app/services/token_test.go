package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TokenManager Test Cases:

1. TestTokenManager_IssueAndVerify
   - Round trip returns the issued subject

2. TestTokenManager_Verify_Expired
   - Token past its TTL is rejected

3. TestTokenManager_Verify_WrongSecret
   - Token signed with a different secret is rejected

4. TestTokenManager_Verify_Malformed
   - Garbage input is rejected

5. TestTokenManager_Verify_WrongAlgorithm
   - Unsigned (none) tokens are rejected

6. TestTokenManager_Issue_ClaimsBounded
   - Issued token carries iat and exp, exp = iat + TTL
*/

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("secret-a"), time.Hour)
	verifier := NewTokenManager([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_Verify_Malformed(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := tm.Verify("not.a.token")
	assert.Error(t, err)

	_, err = tm.Verify("")
	assert.Error(t, err)
}

func TestTokenManager_Verify_WrongAlgorithm(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_Issue_ClaimsBounded(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), 2*time.Hour)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}
