package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/infrastructure/metrics"
	"github.com/prixmathaiti/prixmat-api/internal/ratelimit"
)

// RateLimitMiddleware limite le nombre de requêtes par adresse IP sur une
// fenêtre glissante. Les requêtes refusées reçoivent un 429 avec l'enveloppe
// commune et un en-tête Retry-After.
func RateLimitMiddleware(limiter *ratelimit.Limiter, m *metrics.Metrics) fiber.Handler {
	retryAfter := strconv.Itoa(int(limiter.Window().Seconds()))
	return func(c *fiber.Ctx) error {
		if limiter.Allow(c.IP()) {
			return c.Next()
		}
		if m != nil {
			m.RateLimitedTotal.Inc()
		}
		c.Set(fiber.HeaderRetryAfter, retryAfter)
		return c.Status(fiber.StatusTooManyRequests).
			JSON(dto.Fail("Trop de requêtes, veuillez réessayer plus tard"))
	}
}

// MetricsMiddleware compte les requêtes servies par méthode et statut.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if m != nil {
			status := c.Response().StatusCode()
			if err != nil {
				if e, ok := err.(*fiber.Error); ok {
					status = e.Code
				} else {
					status = fiber.StatusInternalServerError
				}
			}
			m.RequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		}
		return err
	}
}
