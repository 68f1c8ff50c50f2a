package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/donor-matching-service/internal/pkg/metrics"
)

// Metrics records request counts and latency per route pattern.
// A nil collector turns the middleware into a pass-through.
func Metrics(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if collector == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// шаблон маршрута, а не сырой путь: /blood-banks/:id
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}

		collector.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
