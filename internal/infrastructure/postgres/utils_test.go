package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

func TestTranslateConstraint_UniqueViolation(t *testing.T) {
	err := translateConstraint(&pgconn.PgError{Code: "23505"}, "insert car")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTranslateConstraint_ForeignKeyViolation(t *testing.T) {
	err := translateConstraint(&pgconn.PgError{Code: "23503"}, "delete car")
	assert.ErrorIs(t, err, domain.ErrInUse)
}

func TestTranslateConstraint_OtroError_SeEnvuelve(t *testing.T) {
	cause := errors.New("connection refused")
	err := translateConstraint(cause, "insert booking")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert booking")
}

func TestOrderBy_ColumnaPermitida(t *testing.T) {
	allowed := map[string]string{"createdAt": "created_at", "plate": "plate"}

	clause := orderBy(repository.ListParams{SortBy: "plate", SortOrder: "asc"}, allowed, "created_at DESC")
	assert.Equal(t, " ORDER BY plate ASC", clause)
}

func TestOrderBy_ColumnaDesconocida_CaeAlDefault(t *testing.T) {
	// sortBy no whitelisteado nunca llega al SQL: ni error ni inyección.
	allowed := map[string]string{"createdAt": "created_at"}

	clause := orderBy(repository.ListParams{SortBy: "plate; DROP TABLE cars"}, allowed, "created_at DESC")
	assert.Equal(t, " ORDER BY created_at DESC", clause)
}

func TestFilterClauses_SoloClavesPermitidas(t *testing.T) {
	allowed := map[string]string{"status": "status"}
	filters := map[string]string{"status": "active", "hacker": "1=1"}

	where, args := filterClauses(filters, allowed, 2)

	assert.Equal(t, " AND status = $2", where)
	assert.Equal(t, []any{"active"}, args)
}

func TestFilterClauses_SinFiltros(t *testing.T) {
	where, args := filterClauses(nil, map[string]string{"status": "status"}, 1)
	assert.Empty(t, where)
	assert.Nil(t, args)
}
