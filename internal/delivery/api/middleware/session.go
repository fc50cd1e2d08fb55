package middleware

import (
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// SessionMiddleware guards routes that need a signed-in identity.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware creates the session guard.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects the request with "Please login first" when nobody is
// signed in, otherwise stores the identity on the echo context.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.session.CurrentSession()
		if identity == nil {
			return domainerrors.ErrNotAuthenticated
		}
		c.Set(identityKey, identity)

		return next(c)
	}
}

// GetIdentity returns the identity stored by RequireSession.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
