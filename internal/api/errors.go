package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/statcard/internal/errors"
)

// APIError is the JSON body of every failed card request. The same shape is
// written by the chi middleware in internal/http/response.
type APIError struct { //nolint:revive // exported name is part of the OpenAPI schema
	status  int
	Code    string `json:"code" doc:"NOT_FOUND, TRANSPORT, VALIDATION, UNSUPPORTED, INTERNAL or RATE_LIMITED"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Offending fields or values"`
}

func (e *APIError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int { return e.status }

// ContentType implements huma.ContentTypeFilter.
func (e *APIError) ContentType(string) string { return "application/json" }

// RegisterErrorHandler routes huma's error construction through the card
// error codes. It replaces a package-level hook, so it must run before any
// operation is registered.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if de := firstDomainError(errs); de != nil {
			return &APIError{
				status:  de.HTTPStatus(),
				Code:    string(de.Code),
				Message: de.Message,
				Details: de.Details,
			}
		}
		return &APIError{status: status, Code: string(codeForStatus(status)), Message: message}
	}
}

func firstDomainError(errs []error) *domainerrors.Error {
	for _, err := range errs {
		var de *domainerrors.Error
		if errors.As(err, &de) {
			return de
		}
	}
	return nil
}

// codeForStatus names the card code for errors huma raises itself, such as
// unreadable parameters or an oversized snapshot body.
func codeForStatus(status int) domainerrors.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return domainerrors.CodeValidation
	case http.StatusUnsupportedMediaType, http.StatusNotAcceptable, http.StatusMethodNotAllowed:
		return domainerrors.CodeUnsupported
	case http.StatusNotFound:
		return domainerrors.CodeNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return domainerrors.CodeTransport
	}
	return domainerrors.CodeInternal
}
