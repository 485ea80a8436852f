package handler

import (
	"errors"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/domain"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/usecase"
	"github.com/evandrarf/promptquest-be/internal/pkg/catalog"
	"github.com/evandrarf/promptquest-be/internal/pkg/response"
	"github.com/evandrarf/promptquest-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	QuestHandler interface {
		ListQuests(ctx *fiber.Ctx) error
		GetQuest(ctx *fiber.Ctx) error
		StartSession(ctx *fiber.Ctx) error
		GetSession(ctx *fiber.Ctx) error
		SubmitPrompt(ctx *fiber.Ctx) error
		RevealHint(ctx *fiber.Ctx) error
		RestartSession(ctx *fiber.Ctx) error
		AbortSession(ctx *fiber.Ctx) error
		AcknowledgeSession(ctx *fiber.Ctx) error
		GetProgress(ctx *fiber.Ctx) error
		GetLibrary(ctx *fiber.Ctx) error
		GetRecentActivity(ctx *fiber.Ctx) error
	}

	questHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuestUsecase
	}
)

func NewQuestHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuestUsecase) QuestHandler {
	return &questHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /quests?level=1
func (h *questHandler) ListQuests(ctx *fiber.Ctx) error {
	var query entity.ListQuestsQuery
	if err := h.validator.ParseQueryAndValidate(ctx, &query); err != nil {
		return h.fail(ctx, domain.QUEST_LIST_FAILED, err)
	}

	quests, err := h.usecase.ListQuests(ctx.UserContext(), query.Level)
	if err != nil {
		return h.fail(ctx, domain.QUEST_LIST_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_LIST_SUCCESS, quests, fiber.Map{"count": len(quests)}).Send(ctx)
}

// GET /quests/:quest_id
func (h *questHandler) GetQuest(ctx *fiber.Ctx) error {
	quest, err := h.usecase.GetQuest(ctx.UserContext(), ctx.Params("quest_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_GET_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_GET_SUCCESS, quest, nil).Send(ctx)
}

// POST /sessions
func (h *questHandler) StartSession(ctx *fiber.Ctx) error {
	var req entity.StartSessionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_START_FAILED, err)
	}

	session, err := h.usecase.StartSession(ctx.UserContext(), req.Size)
	if err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_START_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SESSION_START_SUCCESS, session, nil).Send(ctx)
}

// GET /sessions/:session_id
func (h *questHandler) GetSession(ctx *fiber.Ctx) error {
	session, err := h.usecase.GetSession(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_GET_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SESSION_GET_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/submissions
func (h *questHandler) SubmitPrompt(ctx *fiber.Ctx) error {
	var req entity.SubmitPromptRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return h.fail(ctx, domain.QUEST_SUBMIT_PROMPT_FAILED, err)
	}

	result, err := h.usecase.Submit(ctx.UserContext(), ctx.Params("session_id"), req.Prompt)
	if err != nil {
		return h.fail(ctx, domain.QUEST_SUBMIT_PROMPT_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SUBMIT_PROMPT_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/hints
func (h *questHandler) RevealHint(ctx *fiber.Ctx) error {
	session, err := h.usecase.RevealHint(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_HINT_REVEAL_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_HINT_REVEAL_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/restart
func (h *questHandler) RestartSession(ctx *fiber.Ctx) error {
	session, err := h.usecase.Restart(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_RESTART_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SESSION_RESTART_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/abort
func (h *questHandler) AbortSession(ctx *fiber.Ctx) error {
	session, err := h.usecase.Abort(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_ABORT_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SESSION_ABORT_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/acknowledge
func (h *questHandler) AcknowledgeSession(ctx *fiber.Ctx) error {
	result, err := h.usecase.Acknowledge(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return h.fail(ctx, domain.QUEST_SESSION_FINISH_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_SESSION_FINISH_SUCCESS, result, nil).Send(ctx)
}

// GET /progress
func (h *questHandler) GetProgress(ctx *fiber.Ctx) error {
	progress := h.usecase.GetProgress(ctx.UserContext())
	return response.NewSuccess(domain.QUEST_PROGRESS_GET_SUCCESS, progress, nil).Send(ctx)
}

// GET /library?q=
func (h *questHandler) GetLibrary(ctx *fiber.Ctx) error {
	var query entity.LibraryQuery
	if err := h.validator.ParseQueryAndValidate(ctx, &query); err != nil {
		return h.fail(ctx, domain.QUEST_LIBRARY_GET_FAILED, err)
	}

	records, err := h.usecase.Library(ctx.UserContext(), query.Q)
	if err != nil {
		return h.fail(ctx, domain.QUEST_LIBRARY_GET_FAILED, err)
	}

	total, err := h.usecase.LibrarySize(ctx.UserContext())
	if err != nil {
		return h.fail(ctx, domain.QUEST_LIBRARY_GET_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_LIBRARY_GET_SUCCESS, records, fiber.Map{
		"count": len(records),
		"total": total,
	}).Send(ctx)
}

// GET /activity/recent?limit=5
func (h *questHandler) GetRecentActivity(ctx *fiber.Ctx) error {
	var query entity.RecentActivityQuery
	if err := h.validator.ParseQueryAndValidate(ctx, &query); err != nil {
		return h.fail(ctx, domain.QUEST_RECENT_ACTIVITY_FAILED, err)
	}

	records, err := h.usecase.RecentActivity(ctx.UserContext(), query.Limit)
	if err != nil {
		return h.fail(ctx, domain.QUEST_RECENT_ACTIVITY_FAILED, err)
	}

	return response.NewSuccess(domain.QUEST_RECENT_ACTIVITY_SUCCESS, records, nil).Send(ctx)
}

func (h *questHandler) fail(ctx *fiber.Ctx, msg string, err error) error {
	var fields *validate.FieldsError
	if errors.As(err, &fields) {
		return response.NewFailed(msg, fields, h.logger).Send(ctx)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return response.NewFailed(msg, fiberErr, h.logger).Send(ctx)
	}

	return response.NewFailed(msg, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmission):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrQuestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, catalog.ErrCatalogExhausted),
		errors.Is(err, usecase.ErrSubmissionInFlight),
		errors.Is(err, usecase.ErrNoMoreHints),
		errors.Is(err, usecase.ErrInvalidTransition):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
