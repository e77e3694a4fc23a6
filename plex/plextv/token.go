package plextv

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
)

// plex.tv's clock may drift from ours, so a freshly issued JWT can have an "iat" in the future.
const clockSkewTolerance = time.Minute

// Token represents a Plex authentication token. Credentials sign-in returns a legacy token (20-character string),
// but plex.tv may hand out a JWT instead.
type Token string

// String returns the token as a string.
func (t *Token) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// IsLegacy returns true if the token is a legacy token (20-character string).
func (t *Token) IsLegacy() bool {
	if t == nil {
		return false
	}
	return len(*t) == 20
}

// IsJWT returns true if the token is a JWT, even if it has expired.
func (t *Token) IsJWT() bool {
	if t == nil {
		return false
	}
	_, err := t.parseJWT()
	return err == nil || errors.Is(err, jwt.TokenExpiredError())
}

// IsValid returns true if the token can still be used.
// Legacy tokens don't expire. A JWT is valid until its expiration time; its signature is not verified.
func (t *Token) IsValid() bool {
	if t == nil || *t == "" {
		return false
	}
	if t.IsLegacy() {
		return true
	}
	tok, err := t.parseJWT()
	if err != nil {
		return false
	}
	exp, ok := tok.Expiration()
	return ok && exp.After(time.Now())
}

func (t *Token) parseJWT() (jwt.Token, error) {
	return jwt.Parse([]byte(*t), jwt.WithVerify(false), jwt.WithAcceptableSkew(clockSkewTolerance))
}
