package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	verr := NewValidationError()
	verr.AddField("Date", "обязательное поле")

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{NotFound("услуга %d", 7), http.StatusNotFound},
		{verr, http.StatusBadRequest},
		{fmt.Errorf("submit: %w", verr), http.StatusBadRequest},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrAuthenticationRequired, http.StatusUnauthorized},
		{Conflict(errors.New("duplicate key")), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "%v", tt.err)
	}
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.True(t, verr.Empty())
	assert.NoError(t, verr.OrNil())

	verr.AddField("Size", "first")
	verr.AddField("Size", "second")
	verr.AddNonField("общая ошибка")

	require.Error(t, verr.OrNil())
	assert.Equal(t, "first", verr.Fields["Size"])
	assert.Contains(t, verr.Error(), `"Size": first`)
	assert.Contains(t, verr.Error(), "общая ошибка")
	assert.ErrorIs(t, verr, ErrValidation)

	got, ok := AsValidation(fmt.Errorf("wrapped: %w", verr))
	require.True(t, ok)
	assert.Same(t, verr, got)
}
