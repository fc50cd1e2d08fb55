package errors

import (
	"net/http"
)

// AuthFailureReason classifies an identity provider rejection.
type AuthFailureReason string

const (
	AuthInvalidEmail        AuthFailureReason = "invalid-email"
	AuthUserDisabled        AuthFailureReason = "user-disabled"
	AuthUserNotFound        AuthFailureReason = "user-not-found"
	AuthWrongPassword       AuthFailureReason = "wrong-password"
	AuthEmailInUse          AuthFailureReason = "email-already-in-use"
	AuthWeakPassword        AuthFailureReason = "weak-password"
	AuthOperationNotAllowed AuthFailureReason = "operation-not-allowed"
	AuthNetworkFailure      AuthFailureReason = "network-request-failed"
	AuthInvalidCredential   AuthFailureReason = "invalid-credential"
	AuthUnclassified        AuthFailureReason = "unclassified"
)

const defaultAuthMessage = "An error occurred"

var authMessages = map[AuthFailureReason]string{
	AuthInvalidEmail:        "Invalid email address",
	AuthUserDisabled:        "This account has been disabled",
	AuthUserNotFound:        "No account found with this email",
	AuthWrongPassword:       "Incorrect password",
	AuthEmailInUse:          "Email already in use",
	AuthWeakPassword:        "Password should be at least 6 characters",
	AuthOperationNotAllowed: "Email/password accounts are not enabled",
	AuthNetworkFailure:      "Network error. Please check your connection",
	AuthInvalidCredential:   "Invalid sign-in credential",
}

var authHTTPCodes = map[AuthFailureReason]int{
	AuthInvalidEmail:        http.StatusBadRequest,
	AuthUserDisabled:        http.StatusForbidden,
	AuthUserNotFound:        http.StatusUnauthorized,
	AuthWrongPassword:       http.StatusUnauthorized,
	AuthEmailInUse:          http.StatusConflict,
	AuthWeakPassword:        http.StatusBadRequest,
	AuthOperationNotAllowed: http.StatusForbidden,
	AuthNetworkFailure:      http.StatusBadGateway,
	AuthInvalidCredential:   http.StatusUnauthorized,
}

// AuthError is a classified identity provider failure. Unclassified failures
// keep the provider's raw message so the user still sees something useful.
type AuthError struct {
	reason AuthFailureReason
	raw    string
}

// NewAuthError builds an AuthError. raw is only surfaced for unclassified reasons.
func NewAuthError(reason AuthFailureReason, raw string) *AuthError {
	return &AuthError{reason: reason, raw: raw}
}

// Reason returns the failure classification.
func (e *AuthError) Reason() AuthFailureReason {
	return e.reason
}

func (e *AuthError) Error() string {
	return e.Message()
}

func (e *AuthError) HTTPCode() int {
	if code, ok := authHTTPCodes[e.reason]; ok {
		return code
	}

	return http.StatusBadRequest
}

func (e *AuthError) ErrorCode() string {
	return "AUTH_" + string(e.reason)
}

func (e *AuthError) Message() string {
	if msg, ok := authMessages[e.reason]; ok {
		return msg
	}
	if e.raw != "" {
		return e.raw
	}

	return defaultAuthMessage
}

func (e *AuthError) Details() string {
	return e.raw
}

// Is matches any AuthError with the same reason.
func (e *AuthError) Is(target error) bool {
	other, ok := target.(*AuthError)
	if !ok {
		return false
	}

	return e.reason == other.reason
}
