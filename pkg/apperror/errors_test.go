package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("VAL_002", "Unsupported network: dogecoin", http.StatusBadRequest)
	assert.Equal(t, "[VAL_002] Unsupported network: dogecoin", e.Error())

	wrapped := Wrap("SYS_002", "Failed to persist payment record", http.StatusInternalServerError, errors.New("disk full"))
	assert.Equal(t, "[SYS_002] Failed to persist payment record: disk full", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := ErrBackendUnavailable(inner)

	assert.True(t, errors.Is(e, inner))
	assert.Nil(t, New("VAL_001", "msg", http.StatusBadRequest).Unwrap())
}

func TestAppError_ErrorsAs(t *testing.T) {
	var target *AppError
	err := fmt.Errorf("handling request: %w", ErrSettlementFailed(errors.New("no route")))

	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "PAY_001", target.Code)
	assert.Equal(t, http.StatusBadGateway, target.HTTPStatus)
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", Validation("amount is required"), "VAL_001", http.StatusBadRequest},
		{"unsupported network", ErrUnsupportedNetwork("ripple"), "VAL_002", http.StatusBadRequest},
		{"invalid webhook url", ErrInvalidWebhookURL(), "VAL_003", http.StatusBadRequest},
		{"settlement failed", ErrSettlementFailed(errors.New("x")), "PAY_001", http.StatusBadGateway},
		{"not found", ErrNotFound("payment"), "PAY_002", http.StatusNotFound},
		{"invalid api key", ErrInvalidAPIKey(), "AUTH_001", http.StatusUnauthorized},
		{"internal", InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
		{"persistence", ErrPersistence(errors.New("x")), "SYS_002", http.StatusInternalServerError},
		{"backend unavailable", ErrBackendUnavailable(errors.New("x")), "SYS_003", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}
