package postgres

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/apperror"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		op     string
		code   string
		status int
	}{
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "uq_norms_key"},
			op:     "insert",
			code:   apperror.CodeDuplicate,
			status: http.StatusConflict,
		},
		{
			name:   "foreign key on delete",
			err:    fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}),
			op:     "delete",
			code:   apperror.CodeConflict,
			status: http.StatusConflict,
		},
		{
			name:   "foreign key on insert",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "fk_zone_warehouse"},
			op:     "insert",
			code:   apperror.CodeValidation,
			status: http.StatusBadRequest,
		},
		{
			name:   "other failure",
			err:    errors.New("connection reset"),
			op:     "select",
			code:   apperror.CodeDatabase,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err, "cat_norms", tt.op)

			appErr, ok := apperror.AsAppError(mapped)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapError_PassThrough(t *testing.T) {
	assert.NoError(t, MapError(nil, "x", "insert"))

	nf := apperror.NewNotFound("zone", "1")
	assert.Same(t, nf, MapError(nf, "cat_zones", "select"))
}
