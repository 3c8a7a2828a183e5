package auth

import (
	"fmt"
	"time"
	"todoServer/internal/server/auth/autherrors"

	"github.com/golang-jwt/jwt/v5"
)

type ParseOptions struct {
	ExpectedIssuer   string
	ExpectedAudience string
	AllowMethods     []string
	Leeway           time.Duration
}

func (hs HS256Signer) ParseSessionToken(token string, opt ParseOptions) (*Claims, error) {
	if token == "" {
		return nil, autherrors.ErrMissingSessionToken
	}

	claims := Claims{}
	tok, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return hs.Secret, nil
		},
		jwt.WithIssuer(opt.ExpectedIssuer),
		jwt.WithLeeway(opt.Leeway),
		jwt.WithAudience(opt.ExpectedAudience),
		jwt.WithValidMethods(opt.AllowMethods),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Name == "" {
		return nil, autherrors.ErrInvalidSessionToken
	}
	return &claims, nil
}
