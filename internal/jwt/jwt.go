package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTService issues and verifies signed bearer tokens
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secret, issuer, audience string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// GenerateToken signs a token for the given user ID. Claims are built
// fresh on every call; nothing is shared between requests.
func (s *JWTService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Issuer:    s.issuer,
		Audience:  jwtlib.ClaimStrings{s.audience},
		Subject:   userID,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies the token's signature, expiry, issuer and
// audience, and returns the subject (user ID)
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	claims := &jwtlib.RegisteredClaims{}

	token, err := jwtlib.ParseWithClaims(tokenString, claims,
		func(t *jwtlib.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(s.issuer),
		jwtlib.WithAudience(s.audience),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
