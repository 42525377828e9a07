// Package token issues and verifies signed session tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Verification failure kinds. They are distinguishable for diagnostics only;
// the transport layer collapses all of them into a single 401.
var (
	ErrMalformed = errors.New("token malformed")
	ErrExpired   = errors.New("token expired")
	ErrSignature = errors.New("token signature invalid")
)

// Codec turns a principal into an opaque, tamper-evident string and back.
// The signing secret is injected at construction so tests can run with
// distinct secrets.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the principal's role, optional student
// identity, and an absolute expiry.
func (c *Codec) Issue(p domain.Principal) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"role": string(p.Role),
		"exp":  time.Now().Add(c.ttl).Unix(),
	}
	if p.Role == domain.RoleStudent {
		claims["student_id"] = p.StudentID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify recomputes the signature over the payload and rejects tampered,
// expired, or unparseable tokens with the corresponding failure kind.
func (c *Codec) Verify(raw string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, ErrSignature
		default:
			return domain.Principal{}, ErrMalformed
		}
	}
	if !tkn.Valid {
		return domain.Principal{}, ErrMalformed
	}

	role, _ := claims["role"].(string)
	studentID, _ := claims["student_id"].(string)

	p := domain.Principal{Role: domain.Role(role), StudentID: studentID}
	if err := p.Validate(); err != nil {
		return domain.Principal{}, ErrMalformed
	}
	return p, nil
}
