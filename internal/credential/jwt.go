package credential

import (
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

var acceptedAlgorithms = []jose.SignatureAlgorithm{
	jose.HS256, jose.HS384, jose.HS512,
	jose.RS256, jose.RS384, jose.RS512,
	jose.ES256, jose.ES384, jose.ES512,
	jose.PS256, jose.PS384, jose.PS512,
	jose.EdDSA,
}

// TokenInfo holds the unverified claims of a JWT bearer token.
type TokenInfo struct {
	Subject string
	Expiry  time.Time // zero when the token has no exp claim
}

// Expired reports whether the token's exp claim is before now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.Expiry.IsZero() && now.After(i.Expiry)
}

// Inspect reads the claims of token without verifying its signature; the
// platform is the one that verifies it. ok is false for non-JWT tokens.
func Inspect(token string) (TokenInfo, bool) {
	parsed, err := jwt.ParseSigned(token, acceptedAlgorithms)
	if err != nil {
		return TokenInfo{}, false
	}
	var claims jwt.Claims
	if err := parsed.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return TokenInfo{}, false
	}
	info := TokenInfo{Subject: claims.Subject}
	if claims.Expiry != nil {
		info.Expiry = claims.Expiry.Time()
	}
	return info, true
}
