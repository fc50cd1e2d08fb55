package auth

import (
	"time"

	"wedump/internal/domain/entity"
	"wedump/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityClaims are the claims carried by a session ID token.
type IdentityClaims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs session ID tokens for providers that keep accounts in process.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an HS256 issuer. An empty secret gets a random one,
// so tokens never outlive the process.
func NewTokenIssuer(secret, issuer string, ttl time.Duration, now func() time.Time) *TokenIssuer {
	if secret == "" {
		secret = uuid.NewString()
	}
	if now == nil {
		now = time.Now
	}

	return &TokenIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: now}
}

// Issue signs an ID token for identity and returns it with its expiry.
func (s *TokenIssuer) Issue(identity *entity.Identity) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := IdentityClaims{
		Email:   identity.Email,
		Name:    identity.DisplayName,
		Picture: identity.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign ID token")
	}

	return signed, expiresAt.Truncate(time.Second), nil
}

// ExpiryOf reads the exp claim of an ID token without verifying it. The
// provider that issued the token has already verified it. Zero means unknown.
func ExpiryOf(idToken string) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
