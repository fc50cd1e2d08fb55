// Package google checks Google ID tokens presented for federated sign-in.
package google

import (
	"context"
	"log/slog"
	"time"

	"wedump/config"
	"wedump/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// IDTokenClaims represents the profile claims in a Google ID token
type IDTokenClaims struct {
	Subject       string    // Google account id
	Email         string    // User's email
	EmailVerified bool      // Email verification status
	Name          string    // User's full name
	Picture       string    // User's profile picture
	ExpiresAt     time.Time // Expiration time
}

// IDTokenVerifier checks Google ID tokens before they are exchanged for a session.
type IDTokenVerifier struct {
	clientID string
	logger   *slog.Logger
	now      func() time.Time
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewIDTokenVerifier creates a verifier for the configured OAuth client.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) *IDTokenVerifier {
	return &IDTokenVerifier{
		clientID: cfg.Auth.GoogleClientID,
		logger:   logger,
		now:      time.Now,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken returns the claims of a usable Google ID token. With a client id
// configured the signature and audience are checked against Google's keys.
// Without one only the issuer and expiry are checked and the signature is left
// to the identity provider the token is exchanged with.
func (s *IDTokenVerifier) VerifyIDToken(ctx context.Context, token string) (*IDTokenClaims, error) {
	if s.clientID == "" {
		return s.inspect(token)
	}

	payload, err := s.validate(ctx, token, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	claims := &IDTokenClaims{
		Subject:   payload.Subject,
		ExpiresAt: time.Unix(payload.Expires, 0),
	}
	claims.Email, _ = payload.Claims["email"].(string)
	claims.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	claims.Name, _ = payload.Claims["name"].(string)
	claims.Picture, _ = payload.Claims["picture"].(string)

	return claims, nil
}

type unverifiedClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

func (s *IDTokenVerifier) inspect(token string) (*IDTokenClaims, error) {
	var parsed unverifiedClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &parsed); err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	validator := jwt.NewValidator(jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err := validator.Validate(parsed); err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	issuerOK := false
	for _, iss := range googleIssuers {
		if parsed.Issuer == iss {
			issuerOK = true
		}
	}
	if !issuerOK {
		return nil, errors.Errorf("invalid issuer: %s", parsed.Issuer)
	}
	if parsed.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &IDTokenClaims{
		Subject:       parsed.Subject,
		Email:         parsed.Email,
		EmailVerified: parsed.EmailVerified,
		Name:          parsed.Name,
		Picture:       parsed.Picture,
		ExpiresAt:     parsed.ExpiresAt.Time,
	}, nil
}
