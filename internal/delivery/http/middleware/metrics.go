package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/geoid-microservice/internal/metrics"
)

// Metrics - длительность запросов в миллисекундах по шаблону маршрута
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// шаблон маршрута, чтобы id в пути не раздували кардинальность
		path := c.Route().Path
		if path == "" || path == "/" {
			path = "unmatched"
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		metrics.RequestDuration.With(prometheus.Labels{
			"method": c.Method(),
			"path":   path,
			"code":   strconv.Itoa(status),
		}).Observe(float64(time.Since(start).Microseconds()) / 1000)

		return err
	}
}
