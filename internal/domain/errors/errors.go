package errors

import (
	"net/http"

	"wedump/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, shown verbatim in toasts
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on error code so copies made by WithDetails still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Form validation errors. Messages match the registration and login forms.
var (
	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"Please fill in all fields",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrTermsNotAccepted = NewBaseError(
		http.StatusBadRequest,
		"TERMS_NOT_ACCEPTED",
		"Please agree to the terms and conditions",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Please enter your email address",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)
)

// Session errors
var (
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please login first",
		"",
	)

	ErrLogoutFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGOUT_FAILED",
		"Failed to logout",
		"",
	)
)

// Upload errors
var (
	ErrNoFileSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_FILE_SELECTED",
		"Please select a photo",
		"",
	)

	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"Please select an image file",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image must be less than 5MB",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to upload photo",
		"",
	)
)

// Feed errors
var (
	ErrLoadPhotosFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_PHOTOS_FAILED",
		"Failed to load photos",
		"",
	)

	ErrLoadUsersFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_USERS_FAILED",
		"Failed to load users",
		"",
	)

	ErrLoadNotificationsFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_NOTIFICATIONS_FAILED",
		"Failed to load notifications",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Photo not found",
		"",
	)

	ErrNotPhotoOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PHOTO_OWNER",
		"You can only delete your own photos",
		"",
	)

	ErrLikeFailed = NewBaseError(
		http.StatusInternalServerError,
		"LIKE_FAILED",
		"Failed to like photo",
		"",
	)

	ErrDeletePhotoFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELETE_PHOTO_FAILED",
		"Failed to delete photo",
		"",
	)

	ErrCommentsNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"COMMENTS_NOT_IMPLEMENTED",
		"Comment feature coming soon!",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrUnknownPage = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_PAGE",
		"Page not found",
		"",
	)
)

// General errors
var (
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error occurred",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrCrossOrigin = NewBaseError(
		http.StatusForbidden,
		"CROSS_ORIGIN_REQUEST",
		"Cross-site requests are not allowed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a document store error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "An error occurred"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
