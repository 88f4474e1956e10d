package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation detecta violação de índice único do Postgres (SQLSTATE
// 23505). O índice parcial de slot usa isso como última linha de defesa
// contra double booking quando o índice de reservas está frio.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
