package route

import (
	"github.com/evandrarf/promptquest-be/internal/delivery/http/handler"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api          *fiber.App
	Middleware   *middleware.Middleware
	QuestHandler handler.QuestHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestIDMiddleware())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupQuestRoute(c.Api, c.QuestHandler, c.Middleware)
}
