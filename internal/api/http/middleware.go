package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/observability"
	apperrors "github.com/manga-catalog/admin-gateway/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(requestIDMiddleware())
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		observability.SetRequestID(c, id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware translates every failure into the panel's JSON
// error envelope, which mirrors the backend's: {success, message, code,
// errors?}.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) {
				status := apiErr.StatusCode
				if status < fiber.StatusBadRequest {
					status = fiber.StatusBadGateway
				}
				message := apiErr.Message
				if message == "" {
					message = "upstream request failed"
				}
				metrics.RecordError(c.Path(), c.Method(), "UPSTREAM_ERROR")
				response := fiber.Map{"success": false, "message": message, "code": status}
				if len(apiErr.Errors) > 0 {
					response["errors"] = apiErr.Errors
				}
				c.Status(status)
				_ = c.JSON(response)
				err = nil
				return
			}

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				metrics.RecordError(c.Path(), c.Method(), "HTTP_ERROR")
				c.Status(fiberErr.Code)
				_ = c.JSON(fiber.Map{"success": false, "message": fiberErr.Message, "code": fiberErr.Code})
				err = nil
				return
			}

			domainErr := apperrors.ToDomainError(err)
			metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
			if domainErr.HTTPStatus >= 500 {
				logger.Error("request failed", zap.Error(domainErr))
			}
			response := fiber.Map{"success": false, "message": domainErr.Message, "code": domainErr.HTTPStatus}
			if len(domainErr.Details) > 0 {
				response["errors"] = domainErr.Details
			}
			c.Status(domainErr.HTTPStatus)
			_ = c.JSON(response)
			err = nil
		}()
		return c.Next()
	}
}
