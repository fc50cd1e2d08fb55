package handler

import (
	"log/slog"
	"net/http"

	"wedump/internal/delivery/api/response"
	"wedump/internal/domain/entity"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// AuthHandler serves the sign-in, registration and logout forms.
type AuthHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		session: params.Session,
		logger:  params.Logger,
	}
}

// SessionResponse describes the current session.
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *entity.Identity `json:"identity,omitempty"`
}

// Login signs in with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	identity, err := h.session.Login(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusOK, sessionOf(identity), response.ToastSuccess, "Welcome back!")
}

// Register creates an account and signs it in
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	identity, err := h.session.Register(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusCreated, sessionOf(identity), response.ToastSuccess, "Account created successfully!")
}

// FederatedLogin signs in with a Google ID token
func (h *AuthHandler) FederatedLogin(c echo.Context) error {
	var req usecase.FederatedLoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	identity, err := h.session.FederatedLogin(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusOK, sessionOf(identity), response.ToastSuccess, "Signed in with Google")
}

// Logout ends the session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusOK, sessionOf(nil), response.ToastInfo, "Logged out successfully")
}

// PasswordReset sends a password reset email
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req usecase.PasswordResetInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	if err := h.session.ResetPassword(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusOK, nil, response.ToastInfo, "Password reset email sent")
}

// GetSession reports who is signed in
func (h *AuthHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, sessionOf(h.session.CurrentSession()))
}

func sessionOf(identity *entity.Identity) SessionResponse {
	return SessionResponse{
		Authenticated: identity != nil,
		Identity:      identity,
	}
}
