package auth

import (
	"testing"
	"time"
	"todoServer/internal/server/auth/autherrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigner() HS256Signer {
	return HS256Signer{
		Secret:   []byte("testSecret"),
		Issuer:   "todoServer",
		Audience: "todoClient",
		TTL:      time.Hour,
	}
}

func testOptions() ParseOptions {
	return ParseOptions{
		ExpectedIssuer:   "todoServer",
		ExpectedAudience: "todoClient",
		AllowMethods:     []string{"HS256"},
		Leeway:           time.Second,
	}
}

func TestHS256Signer_RoundTrip(t *testing.T) {
	signer := testSigner()

	token, err := signer.NewSessionToken("alice")
	require.NoError(t, err)

	claims, err := signer.ParseSessionToken(token, testOptions())
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "todoServer", claims.Issuer)
}

func TestHS256Signer_NewSessionToken_EmptyName(t *testing.T) {
	_, err := testSigner().NewSessionToken("")
	assert.ErrorIs(t, err, autherrors.ErrEmptySessionName)
}

func TestHS256Signer_ParseSessionToken_Errors(t *testing.T) {
	signer := testSigner()

	otherSecret := testSigner()
	otherSecret.Secret = []byte("anotherSecret")
	foreign, err := otherSecret.NewSessionToken("alice")
	require.NoError(t, err)

	expiredSigner := testSigner()
	expiredSigner.TTL = -time.Hour
	expired, err := expiredSigner.NewSessionToken("alice")
	require.NoError(t, err)

	otherAudience := testSigner()
	otherAudience.Audience = "someoneElse"
	wrongAud, err := otherAudience.NewSessionToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: autherrors.ErrMissingSessionToken},
		{name: "garbage", token: "not.a.jwt", wantErr: jwt.ErrTokenMalformed},
		{name: "wrong secret", token: foreign, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired, wantErr: jwt.ErrTokenExpired},
		{name: "wrong audience", token: wrongAud, wantErr: jwt.ErrTokenInvalidAudience},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := signer.ParseSessionToken(tc.token, testOptions())
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
