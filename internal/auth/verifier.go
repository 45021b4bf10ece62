// Package auth verifies the bearer credentials attached to write requests.
// The identity service itself is external; this package only checks the
// tokens it issues.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"cms-admin/internal/domain"
)

// Identity is the verified subject behind a bearer credential.
type Identity struct {
	Subject string
	Email   string
}

// Verifier validates a bearer credential and yields the caller identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier verifies HMAC-signed tokens issued by the identity service.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier with the shared signing secret. An empty
// issuer disables the issuer check.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

type idClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify parses and validates the token, returning the subject identity.
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &idClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, domain.WrapError(domain.KindUnauthorized, "invalid credential", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.NewError(domain.KindUnauthorized, "invalid credential")
	}

	return &Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
