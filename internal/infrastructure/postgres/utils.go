package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Hospital-api/internal/domain"
)

// mapError traduce los códigos SQLSTATE a errores de dominio.
//
//	23505 unique_violation          → ErrDuplicate
//	23503 foreign_key_violation     → ErrNotFound (referencia inexistente)
//	22P02 invalid_text_representation (uuid mal formado) → ErrNotFound
//	23514 check_violation           → ErrInvalidInput
//	40001 / 40P01 / 55P03           → ErrConflict (serialización, deadlock, lock)
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, op)
		case "23503", "22P02":
			return fmt.Errorf("%w: %s: referencia inexistente", domain.ErrNotFound, op)
		case "23514":
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, op, pgErr.ConstraintName)
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %s", domain.ErrConflict, op)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUUID evita consultar con un id que la columna UUID rechazaría.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullable convierte "" en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern construye '%q%' escapando los comodines de LIKE.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
