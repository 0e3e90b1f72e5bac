package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode_WrappedChain(t *testing.T) {
	err := fmt.Errorf("create norm: %w", NewDuplicate("norm", "key", "k"))

	assert.True(t, HasCode(err, CodeDuplicate))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeDuplicate))
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", NewNotFound("zone", "z1"))))
}

func TestNewDatabase_HidesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabase("list zones", cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.NotContains(t, err.Message, "connection reset")
	assert.ErrorIs(t, err, cause)

	appErr, ok := AsAppError(fmt.Errorf("wrap: %w", err))
	require.True(t, ok)
	assert.Equal(t, "list zones", appErr.Details["operation"])
}

func TestWithDetail_InitialisesMap(t *testing.T) {
	err := NewValidation("bad").WithDetail("field", "startDate")
	assert.Equal(t, "startDate", err.Details["field"])
	assert.Equal(t, "VALIDATION_ERROR: bad", err.Error())
}
