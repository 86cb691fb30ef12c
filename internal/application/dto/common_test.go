package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilogush/cars-api/internal/application/dto"
)

func TestPageRequest_Defaults(t *testing.T) {
	p := dto.PageRequest{}
	params := p.ToListParams()

	assert.Equal(t, dto.DefaultPageSize, params.Limit)
	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestPageRequest_OffsetDerivado(t *testing.T) {
	// page=2&pageSize=10 -> filas 10..19
	p := dto.PageRequest{Page: 2, PageSize: 10}
	params := p.ToListParams()

	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 10, params.Offset)
}

func TestPageRequest_TopeDePageSize(t *testing.T) {
	p := dto.PageRequest{Page: 1, PageSize: 5000}
	params := p.ToListParams()

	assert.Equal(t, dto.MaxPageSize, params.Limit, "pageSize se recorta al tope, no es error")
}

func TestPageRequest_PaginaNegativa(t *testing.T) {
	p := dto.PageRequest{Page: -3, PageSize: -1}
	params := p.ToListParams()

	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, dto.DefaultPageSize, params.Limit)
}

func TestPageRequest_FiltrosJSON(t *testing.T) {
	p := dto.PageRequest{Filters: `{"status":"active","plate":"ABC123"}`}
	params := p.ToListParams()

	assert.Equal(t, "active", params.Filters["status"])
	assert.Equal(t, "ABC123", params.Filters["plate"])
}

func TestPageRequest_FiltrosMalformados_SeIgnoran(t *testing.T) {
	p := dto.PageRequest{Filters: `{status:`}
	params := p.ToListParams()

	assert.Nil(t, params.Filters, "JSON malformado -> listado sin filtro, no error")
}

func TestPageRequest_SortOrderInvalido_CaeADesc(t *testing.T) {
	p := dto.PageRequest{SortOrder: "sideways"}
	params := p.ToListParams()

	assert.Equal(t, "desc", params.SortOrder)
}
