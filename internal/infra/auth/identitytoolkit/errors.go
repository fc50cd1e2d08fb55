package identitytoolkit

import (
	"net"
	"net/url"

	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/errors"

	"google.golang.org/api/googleapi"
)

var reasonsByCode = map[string]domainerrors.AuthFailureReason{
	"INVALID_EMAIL":             domainerrors.AuthInvalidEmail,
	"MISSING_EMAIL":             domainerrors.AuthInvalidEmail,
	"USER_DISABLED":             domainerrors.AuthUserDisabled,
	"EMAIL_NOT_FOUND":           domainerrors.AuthUserNotFound,
	"USER_NOT_FOUND":            domainerrors.AuthUserNotFound,
	"INVALID_PASSWORD":          domainerrors.AuthWrongPassword,
	"INVALID_LOGIN_CREDENTIALS": domainerrors.AuthWrongPassword,
	"EMAIL_EXISTS":              domainerrors.AuthEmailInUse,
	"WEAK_PASSWORD":             domainerrors.AuthWeakPassword,
	"OPERATION_NOT_ALLOWED":     domainerrors.AuthOperationNotAllowed,
	"PASSWORD_LOGIN_DISABLED":   domainerrors.AuthOperationNotAllowed,
	"INVALID_IDP_RESPONSE":      domainerrors.AuthInvalidCredential,
	"INVALID_ID_TOKEN":          domainerrors.AuthInvalidCredential,
}

// classifyError maps a relying party call failure onto an AuthError.
func classifyError(err error) error {
	if apiErr, ok := errors.AsType[*googleapi.Error](err); ok {
		return classifyMessage(apiErr.Message)
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return domainerrors.NewAuthError(domainerrors.AuthNetworkFailure, err.Error())
	}

	return domainerrors.NewAuthError(domainerrors.AuthUnclassified, err.Error())
}

func classifyMessage(message string) error {
	if reason, ok := reasonsByCode[trimDetail(message)]; ok {
		return domainerrors.NewAuthError(reason, message)
	}

	return domainerrors.NewAuthError(domainerrors.AuthUnclassified, message)
}
