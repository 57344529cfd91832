package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isNoRows reconoce el "no encontrado" de pgx; los repositorios lo traducen
// a (nil, nil) en vez de propagarlo como error.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reconoce una violación de constraint único (23505).
// Es el respaldo del pre-chequeo de SKU: la carrera check-then-insert la
// resuelve el índice único, no el código.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
