package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/evandrarf/promptquest-be/internal/pkg/response"
)

const defaultMaxSubmissionBytes = 16 * 1024

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
}

func (m *Middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})
}

// SubmissionLimit rejects oversized submission bodies. The prompt length
// advisory is separate and never rejects a request.
func (m *Middleware) SubmissionLimit() fiber.Handler {
	limit := defaultMaxSubmissionBytes
	if m != nil && m.Config != nil {
		if v := m.Config.GetInt("api.max_submission_bytes"); v > 0 {
			limit = v
		}
	}

	return func(ctx *fiber.Ctx) error {
		if len(ctx.Body()) > limit {
			var log *logrus.Logger
			if m != nil {
				log = m.Log
			}
			return response.NewFailed("Request body terlalu besar", fiber.NewError(fiber.StatusRequestEntityTooLarge, "submission body too large"), log).Send(ctx)
		}
		return ctx.Next()
	}
}
