package response

import (
	"errors"

	"github.com/evandrarf/promptquest-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

// requestIDKey is the locals key populated by the requestid middleware.
const requestIDKey = "requestid"

type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      any    `json:"error,omitempty"`
	Data       any    `json:"data,omitempty"`
	Meta       any    `json:"meta,omitempty"`
	RequestID  string `json:"requestId,omitempty"`

	cause error
	log   *logrus.Logger
}

func NewInternalServerError() *Response {
	res := &Response{
		Success:    false,
		Message:    "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
	return res
}

// NewFailed builds a failure envelope. The status comes from a wrapped
// *fiber.Error, validation failures map to 400 and anything else is a 500.
func NewFailed(msg string, err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		Message:    msg,
		StatusCode: fiber.StatusInternalServerError,
		cause:      err,
		log:        logger,
	}

	var fiberErr *fiber.Error
	var fieldsErr *validate.FieldsError
	switch {
	case errors.As(err, &fieldsErr):
		res.StatusCode = fiber.StatusBadRequest
		res.Error = fieldsErr.Fields
	case errors.As(err, &fiberErr):
		res.StatusCode = fiberErr.Code
		if fiberErr.Message != "" {
			res.Error = fiberErr.Message
		}
	}

	return res
}

func NewSuccess(msg string, data any, meta any) *Response {
	res := &Response{
		Success:    true,
		Message:    msg,
		StatusCode: fiber.StatusOK,
		Data:       data,
		Meta:       meta,
	}

	return res
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	if id, ok := ctx.Locals(requestIDKey).(string); ok {
		r.RequestID = id
	}

	if r.log != nil && r.StatusCode >= fiber.StatusInternalServerError {
		r.log.WithFields(logrus.Fields{
			"request_id": r.RequestID,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
		}).Error(r.cause)
	}

	return ctx.Status(r.StatusCode).JSON(r)
}
