// Package walletauth validates bearer tokens issued by the external
// wallet-auth gateway after a client proves wallet ownership. This side
// never issues tokens; it only verifies them and extracts the wallet
// address the gateway attested to.
package walletauth

import (
	"errors" // Verification errors

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired token, wrong audience, or a missing wallet address claim.
var ErrInvalidToken = errors.New("invalid wallet-auth token")

// Claims carried by a gateway-issued bearer token. The wallet address
// travels in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims // Standard JWT claims (sub, aud, exp, iat)
}

// Verifier checks gateway tokens against the operator's auth domain and
// shared signing secret.
type Verifier struct {
	domain string // Expected token audience
	secret []byte // Shared HS256 signing secret
}

// NewVerifier constructs a Verifier for the given auth domain and secret.
func NewVerifier(domain, secret string) *Verifier {
	return &Verifier{domain: domain, secret: []byte(secret)}
}

// Verify parses and validates a bearer token string and returns the
// wallet address it attests to. Returns ErrInvalidToken on any failure.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience(v.domain))
	// Check for parsing or validation errors
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil // Subject carries the verified wallet address
}
