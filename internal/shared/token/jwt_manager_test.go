package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/shared/testutil"
	"github.com/boracay-silvertown/go-api-server/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	// Given: A manager with a test configuration
	manager := token.NewJWTManager(testutil.NewTestConfig())

	// When: Generate and validate an access token
	tokenString, err := manager.GenerateAccessToken("42", "member@example.com", "member")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.ValidateToken(tokenString)

	// Then: Claims round-trip intact
	require.NoError(t, err)
	assert.Equal(t, "42", claims.MemberID)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, token.ACCESS, claims.TokenType)
	assert.False(t, claims.IsAdmin())

	// And: The registered expiry survives parsing so the library can enforce it
	require.NotNil(t, claims.RegisteredClaims.ExpiresAt)
	assert.True(t, claims.RegisteredClaims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Expired(t *testing.T) {
	// Given: A manager whose access tokens are already expired at issue time
	cfg := testutil.NewTestConfig()
	cfg.JWT.Expiry = -time.Hour
	manager := token.NewJWTManager(cfg)

	tokenString, err := manager.GenerateAccessToken("1", "member@example.com", "member")
	require.NoError(t, err)

	// When: Validate the expired token
	_, err = manager.ValidateToken(tokenString)

	// Then: Rejected as expired, not accepted and not a generic failure
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestGenerateRefreshToken_TokenType(t *testing.T) {
	// Given: A manager with a test configuration
	manager := token.NewJWTManager(testutil.NewTestConfig())

	// When: Generate a refresh token
	tokenString, err := manager.GenerateRefreshToken("7", "admin@example.com", "admin")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(tokenString)

	// Then: Token type and role survive
	require.NoError(t, err)
	assert.Equal(t, token.REFRESH, claims.TokenType)
	assert.True(t, claims.IsAdmin())
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	// Given: A valid token
	manager := token.NewJWTManager(testutil.NewTestConfig())
	tokenString, err := manager.GenerateAccessToken("1", "member@example.com", "member")
	require.NoError(t, err)

	// When: The signature segment is corrupted
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "invalidsignature"

	_, err = manager.ValidateToken(tampered)

	// Then: Validation fails
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	_, err := manager.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestClaims_IsAdmin(t *testing.T) {
	testCases := []struct {
		role    string
		isAdmin bool
	}{
		{role: "admin", isAdmin: true},
		{role: "manager", isAdmin: true},
		{role: "member", isAdmin: false},
		{role: "", isAdmin: false},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			claims := &token.Claims{Role: tc.role}
			assert.Equal(t, tc.isAdmin, claims.IsAdmin())
		})
	}
}
