package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager(testSecret, 30*time.Minute)

	token, expiresAt, err := m.Issue("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	subject, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestTokenManager_Issue_Failure(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		ttl     time.Duration
		subject string
	}{
		{name: "empty subject", secret: testSecret, ttl: time.Minute, subject: " "},
		{name: "empty secret", secret: "", ttl: time.Minute, subject: "admin"},
		{name: "non-positive ttl", secret: testSecret, ttl: 0, subject: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTokenManager(tt.secret, tt.ttl)
			_, _, err := m.Issue(tt.subject)
			assert.Error(t, err)
		})
	}
}

func TestTokenManager_Parse_Failure(t *testing.T) {
	m := NewTokenManager(testSecret, 30*time.Minute)

	expired := NewTokenManager(testSecret, time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, _, err := expired.Issue("admin")
	require.NoError(t, err)

	otherKey := NewTokenManager("fedcba9876543210fedcba9876543210", time.Minute)
	foreignToken, _, err := otherKey.Issue("admin")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expiredToken},
		{name: "wrong signing key", token: foreignToken},
		{name: "none algorithm", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", expected: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := BearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword("s3cret", "s3cret"))
	assert.False(t, CheckPassword("s3cret", "wrong"))
	assert.True(t, CheckPassword(string(hash), "s3cret"))
	assert.False(t, CheckPassword(string(hash), "wrong"))
}
