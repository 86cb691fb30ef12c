package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ilogush/cars-api/internal/application/dto"
)

// RateLimit ventana fija en memoria por IP de cliente. Supera el tope ->
// 429 con Retry-After en segundos. Contador por proceso: protección advisory
// contra fuerza bruta, no frontera de seguridad.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiterConfig(max, window, false))
}

// FailedLoginLimit como RateLimit pero solo cuenta requests fallidos (>= 400):
// una ventana más larga que castiga la fuerza bruta sin frenar logins válidos.
func FailedLoginLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiterConfig(max, window, true))
}

func limiterConfig(max int, window time.Duration, onlyFailures bool) limiter.Config {
	return limiter.Config{
		Max:                    max,
		Expiration:             window,
		SkipSuccessfulRequests: onlyFailures,
		KeyGenerator: func(c *fiber.Ctx) string {
			return clientIP(c)
		},
		// El limiter ya fijó Retry-After con los segundos que le quedan a la
		// ventana; acá solo va el cuerpo del 429.
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos, espere antes de reintentar",
			})
		},
	}
}
