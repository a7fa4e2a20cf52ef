package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodePrecondition           = "SYNC_001"
	CodeInvalidDocumentState   = "SYNC_002"
	CodeUnsupportedAccountType = "SYNC_003"
	CodeMissingRemoteID        = "SYNC_004"
	CodeRecordLocked           = "SYNC_005"
	CodeRemote                 = "REM_001"
	CodeBlob                   = "REM_002"
	CodeNotFound               = "REC_001"
	CodeInvalidToken           = "AUTH_001"
	CodeValidation             = "REQ_001"
	CodeRateLimited            = "REQ_002"
	CodeInternal               = "SYS_001"
)

// ---- Sync preconditions (SYNC) ----
// These signal caller bugs: raised immediately, never retried.

// ErrAlreadyCreated is returned by create operations on a record that
// already carries a remote identifier.
func ErrAlreadyCreated(entity string) *AppError {
	return New(CodePrecondition, fmt.Sprintf("%s already exists on the payment processor", entity), http.StatusConflict)
}

// ErrPrecondition reports a generic lifecycle misuse.
func ErrPrecondition(message string) *AppError {
	return New(CodePrecondition, message, http.StatusConflict)
}

func ErrInvalidDocumentState(status string) *AppError {
	return New(CodeInvalidDocumentState,
		fmt.Sprintf("cannot ask for validation of a document in state %q", status),
		http.StatusConflict)
}

func ErrUnsupportedAccountType(accountType string) *AppError {
	return New(CodeUnsupportedAccountType,
		fmt.Sprintf("bank account type %q not implemented", accountType),
		http.StatusUnprocessableEntity)
}

// ErrMissingRemoteID is returned when an operation needs a record that
// has not been created remotely yet.
func ErrMissingRemoteID(entity string) *AppError {
	return New(CodeMissingRemoteID, fmt.Sprintf("%s has no remote identifier", entity), http.StatusConflict)
}

func ErrRecordLocked(entity string) *AppError {
	return New(CodeRecordLocked, fmt.Sprintf("%s is being synchronized by another caller", entity), http.StatusConflict)
}

// ---- Remote boundary (REM) ----

// ErrRemote wraps a processor failure. The original error stays reachable
// through errors.Is / errors.As.
func ErrRemote(operation string, err error) *AppError {
	return Wrap(CodeRemote, fmt.Sprintf("payment processor call failed: %s", operation), http.StatusBadGateway, err)
}

func ErrBlob(err error) *AppError {
	return Wrap(CodeBlob, "page file could not be fetched", http.StatusBadGateway, err)
}

// ---- Records & requests ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded, retry later", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
