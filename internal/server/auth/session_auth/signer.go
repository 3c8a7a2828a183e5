package auth

import (
	"time"
	"todoServer/internal/server/auth/autherrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Claims - содержимое сессионной куки.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type HS256Signer struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

func (hs HS256Signer) NewSessionToken(name string) (string, error) {
	if name == "" {
		return "", autherrors.ErrEmptySessionName
	}

	now := time.Now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    hs.Issuer,
			Audience:  jwt.ClaimStrings{hs.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(hs.TTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(hs.Secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return token, nil
}

func (hs HS256Signer) GetTTL() time.Duration {
	return hs.TTL
}

func (hs HS256Signer) GetIssuer() string {
	return hs.Issuer
}

func (hs HS256Signer) GetAudience() string {
	return hs.Audience
}
