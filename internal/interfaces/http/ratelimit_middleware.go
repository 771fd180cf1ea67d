package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/pkg/metrics"
)

// LoginRateLimiter limita los intentos de login por IP con token bucket.
// Frena fuerza bruta de credenciales sin penalizar al resto de la API.
func LoginRateLimiter(perSecond float64, burst int) fiber.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			// Poda tosca para que el mapa no crezca sin límite.
			if len(limiters) > 10000 {
				limiters = make(map[string]*rate.Limiter)
			}
			lim = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			metrics.RecordAuthFailure("rate_limited")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiados intentos, espere un momento",
			})
		}
		return c.Next()
	}
}
