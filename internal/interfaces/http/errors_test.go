package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/cars-api/internal/domain"
)

func TestRespondError_NoFiltraDetallesInternos(t *testing.T) {
	// Un error no clasificado sale como 500 genérico; el detalle (DSN, host,
	// driver) solo va al log del servidor.
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "connection refused")
	assert.NotContains(t, string(body), "10.0.0.5")
}

func TestRespondError_ErroresDeDominioConservanSuMapeo(t *testing.T) {
	app := fiber.New()
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return respondError(c, domain.ErrNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notfound", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
