package servererrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahalrsh/point-of-sale/internal/servererrors"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind servererrors.Kind
		want int
	}{
		{servererrors.KindInvalidInput, http.StatusBadRequest},
		{servererrors.KindInsufficientStock, http.StatusBadRequest},
		{servererrors.KindPaymentTooLow, http.StatusBadRequest},
		{servererrors.KindPaymentTooHigh, http.StatusBadRequest},
		{servererrors.KindNotFound, http.StatusNotFound},
		{servererrors.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := servererrors.New(tc.kind, "boom")
		assert.Equal(t, tc.want, err.HTTPStatus())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	err := servererrors.New(servererrors.KindNotFound, "Items %d not found", 7)
	wrapped := fmt.Errorf("placing order: %w", err)

	var serverErr *servererrors.Error
	assert.True(t, errors.As(wrapped, &serverErr))
	assert.Equal(t, servererrors.KindNotFound, serverErr.Kind)
	assert.Equal(t, "Items 7 not found", serverErr.Message)
	assert.Equal(t, "Items 7 not found", serverErr.Error())
}
