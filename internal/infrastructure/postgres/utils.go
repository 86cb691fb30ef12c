package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// db abstrae *pgxpool.Pool y pgx.Tx para que los repos funcionen igual dentro
// y fuera de una transacción.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de foreign key (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// translateConstraint mapea errores de constraint a errores de dominio con
// mensaje apto para el usuario ("ya existe" / "en uso"). El resto se envuelve.
func translateConstraint(err error, op string) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrInUse
	}
	return fmt.Errorf("%s: %w", op, err)
}

// orderBy construye la cláusula ORDER BY validando sortBy contra la whitelist
// de columnas del repo. sortBy desconocido cae al orden por defecto.
func orderBy(params repository.ListParams, allowed map[string]string, def string) string {
	col, ok := allowed[params.SortBy]
	if !ok {
		return " ORDER BY " + def
	}
	dir := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

// filterClauses genera fragmentos "AND col = $n" para los filtros permitidos.
// Los valores siempre viajan como argumentos posicionales; las claves no
// listadas en allowed se ignoran.
func filterClauses(filters map[string]string, allowed map[string]string, nextArg int) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}
	var sb strings.Builder
	var args []any
	for key, col := range allowed {
		val, ok := filters[key]
		if !ok || val == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(" AND %s = $%d", col, nextArg))
		args = append(args, val)
		nextArg++
	}
	return sb.String(), args
}
