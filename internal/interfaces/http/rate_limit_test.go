package http_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ilogush/cars-api/internal/interfaces/http"
)

func buildLimitedApp(handler fiber.Handler, limit fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/login", limit, handler)
	return app
}

func hitLogin(t *testing.T, app *fiber.App, ip string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRateLimit_BloqueaAlSuperarElTope(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := buildLimitedApp(ok, apphttp.RateLimit(3, time.Minute))

	for i := 0; i < 3; i++ {
		resp := hitLogin(t, app, "10.0.0.1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := hitLogin(t, app, "10.0.0.1")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	retry, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	require.NoError(t, err, "el 429 debe traer Retry-After numérico")
	assert.Positive(t, retry)
}

func TestRateLimit_RetryAfterEsElTiempoRestante(t *testing.T) {
	// Retry-After informa lo que le queda a la ventana, no la ventana entera:
	// con ventana de 5s y el tope gastado, un request a los ~2s debe ver un
	// valor menor que 5.
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := buildLimitedApp(ok, apphttp.RateLimit(1, 5*time.Second))

	resp := hitLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	time.Sleep(2 * time.Second)

	resp = hitLogin(t, app, "10.0.0.1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	retry, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	require.NoError(t, err)
	assert.Less(t, retry, 5, "debe descontar el tiempo ya transcurrido")
	assert.GreaterOrEqual(t, retry, 1)
}

func TestRateLimit_VentanaVencidaReiniciaElContador(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := buildLimitedApp(ok, apphttp.RateLimit(1, time.Second))

	resp := hitLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = hitLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp.Body.Close()

	time.Sleep(1100 * time.Millisecond)

	resp = hitLogin(t, app, "10.0.0.1")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "pasada la ventana vuelve el cupo")
}

func TestRateLimit_ContadorSeparadoPorIP(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := buildLimitedApp(ok, apphttp.RateLimit(2, time.Minute))

	for i := 0; i < 2; i++ {
		resp := hitLogin(t, app, "10.0.0.1")
		resp.Body.Close()
	}
	resp := hitLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp.Body.Close()

	// otra IP sigue con cupo
	resp = hitLogin(t, app, "10.0.0.2")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFailedLoginLimit_SoloCuentaFallos(t *testing.T) {
	// Logins exitosos no consumen la ventana de fallos; solo los >= 400.
	fail := true
	handler := func(c *fiber.Ctx) error {
		if fail {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	}
	app := buildLimitedApp(handler, apphttp.FailedLoginLimit(2, 5*time.Minute))

	fail = false
	for i := 0; i < 5; i++ {
		resp := hitLogin(t, app, "10.0.0.1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	fail = true
	for i := 0; i < 2; i++ {
		resp := hitLogin(t, app, "10.0.0.1")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}

	resp := hitLogin(t, app, "10.0.0.1")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
