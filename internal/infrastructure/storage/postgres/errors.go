package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"capplan/internal/core/apperror"
)

// PostgreSQL error codes mapped to application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapError converts a driver error into an AppError.
// Errors that already are AppErrors pass through unchanged.
func MapError(err error, entity, op string) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.NewDuplicate(entity, constraintField(pgErr), pgErr.Detail).WithCause(err)
		case pgForeignKeyViolation:
			if op == "delete" {
				return apperror.NewConflict("Нельзя удалить: объект используется другими записями").
					WithDetail("entity", entity).
					WithCause(err)
			}
			return apperror.NewValidation("referenced record does not exist").
				WithDetail("entity", entity).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		case pgCheckViolation:
			return apperror.NewValidation("value violates a table constraint").
				WithDetail("entity", entity).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}

	return apperror.NewDatabase(op+" "+entity, err)
}

// constraintField names the violated key for error details.
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return "key"
}
