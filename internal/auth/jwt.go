package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT handles token generation and validation.
type JWT struct {
	secret []byte
	exp    time.Duration
}

// Claims carries the identity-provider profile alongside the registered
// claims. Group membership drives authorization: a user may edit an
// application table exactly when its ID is among their groups.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string   `json:"tid,omitempty"`
	Email    string   `json:"email,omitempty"`
	Name     string   `json:"name,omitempty"`
	Groups   []string `json:"groups,omitempty"`
}

// GetTenantID returns the tenant ID claim.
func (c *Claims) GetTenantID() string { return c.TenantID }

// Identity returns the identity-provider view of the claims.
func (c *Claims) Identity() Identity {
	return Identity{Sub: c.Subject, Email: c.Email, Name: c.Name, Groups: c.Groups}
}

// NewJWT returns a new JWT handler.
func NewJWT(secret string, exp time.Duration) *JWT {
	return &JWT{secret: []byte(secret), exp: exp}
}

// Expiry returns the configured token lifetime.
func (j *JWT) Expiry() time.Duration { return j.exp }

// Generate creates a signed token for the given user.
func (j *JWT) Generate(u *User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.exp)),
		},
		Email:  u.Email,
		Name:   u.Name,
		Groups: u.Groups,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Validate parses and validates the token returning its claims.
func (j *JWT) Validate(tok string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
