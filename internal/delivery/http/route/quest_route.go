package route

import (
	"github.com/evandrarf/promptquest-be/internal/delivery/http/handler"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupQuestRoute(api *fiber.App, handler handler.QuestHandler, m *middleware.Middleware) {
	api.Get("/quests", handler.ListQuests)
	api.Get("/quests/:quest_id", handler.GetQuest)

	sessionRouter := api.Group("/sessions")
	{
		sessionRouter.Post("/", handler.StartSession)
		sessionRouter.Get("/:session_id", handler.GetSession)
		sessionRouter.Post("/:session_id/submissions", m.SubmissionLimit(), handler.SubmitPrompt)
		sessionRouter.Post("/:session_id/hints", handler.RevealHint)
		sessionRouter.Post("/:session_id/restart", handler.RestartSession)
		sessionRouter.Post("/:session_id/abort", handler.AbortSession)
		sessionRouter.Post("/:session_id/acknowledge", handler.AcknowledgeSession)
	}

	api.Get("/progress", handler.GetProgress)
	api.Get("/library", handler.GetLibrary)
	api.Get("/activity/recent", handler.GetRecentActivity)
}
