package server

import (
	"time"

	"fjacquet/nexus-classifier/internal/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	headerRequestID   = "X-Request-ID"
	headerProcessTime = "X-Process-Time"
	localsRequestID   = "request_id"
)

// requestID propagates the caller's X-Request-ID or assigns a new one.
func requestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Locals(localsRequestID, id)
		return c.Next()
	}
}

// requestLogger writes one log line per request and sets X-Process-Time, in
// seconds rounded to four decimals. Errors are rendered here so the logged
// status is the one sent to the client.
func requestLogger(logger logging.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		c.Set(headerProcessTime, formatProcessTime(elapsed))

		id, _ := c.Locals(localsRequestID).(string)
		logger.WithFields(
			logging.Field{Key: logging.FieldRequestID, Value: id},
			logging.Field{Key: logging.FieldMethod, Value: c.Method()},
			logging.Field{Key: logging.FieldPath, Value: c.Path()},
			logging.Field{Key: logging.FieldStatus, Value: c.Response().StatusCode()},
			logging.Field{Key: logging.FieldDuration, Value: elapsed.Milliseconds()},
		).Info("Request handled")

		return nil
	}
}

func formatProcessTime(d time.Duration) string {
	return decimal.NewFromFloat(d.Seconds()).Round(4).String()
}
