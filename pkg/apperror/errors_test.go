package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrMissingRemoteID("document"),
			expected: "[SYNC_004] document has no remote identifier",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrRemote("create user", fmt.Errorf("status 400")),
			expected: "[REM_001] payment processor call failed: create user: status 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	appErr := ErrRemote("create wallet", inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrNotFound("user").Unwrap())
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("ask validation: %w", ErrInvalidDocumentState("VALIDATED"))

	assert.True(t, HasCode(err, CodeInvalidDocumentState))
	assert.False(t, HasCode(err, CodeRemote))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AlreadyCreated", ErrAlreadyCreated("user"), CodePrecondition, http.StatusConflict},
		{"Precondition", ErrPrecondition("no card"), CodePrecondition, http.StatusConflict},
		{"InvalidDocumentState", ErrInvalidDocumentState("REFUSED"), CodeInvalidDocumentState, http.StatusConflict},
		{"UnsupportedAccountType", ErrUnsupportedAccountType("CA"), CodeUnsupportedAccountType, http.StatusUnprocessableEntity},
		{"MissingRemoteID", ErrMissingRemoteID("card"), CodeMissingRemoteID, http.StatusConflict},
		{"RecordLocked", ErrRecordLocked("payin"), CodeRecordLocked, http.StatusConflict},
		{"Remote", ErrRemote("x", errors.New("boom")), CodeRemote, http.StatusBadGateway},
		{"Blob", ErrBlob(errors.New("404")), CodeBlob, http.StatusBadGateway},
		{"NotFound", ErrNotFound("wallet"), CodeNotFound, http.StatusNotFound},
		{"InvalidToken", ErrInvalidToken(), CodeInvalidToken, http.StatusUnauthorized},
		{"Validation", Validation("bad"), CodeValidation, http.StatusBadRequest},
		{"RateLimitExceeded", ErrRateLimitExceeded(), CodeRateLimited, http.StatusTooManyRequests},
		{"Internal", InternalError(errors.New("db")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}
