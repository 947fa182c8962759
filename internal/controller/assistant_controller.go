package controller

import (
	"fmt"
	"strings"

	"jarvis-assistant-be/internal/dto"
	"jarvis-assistant-be/internal/pkg/serverutils"
	"jarvis-assistant-be/internal/service"
	"jarvis-assistant-be/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/chat", c.Chat)
	r.Post("/index", c.Index)
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok", Service: "jarvis"})
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Whitespace-only queries pass the required tag but are still empty.
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("%w: query cannot be empty", apperrors.ErrValidation)
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *assistantController) Index(ctx *fiber.Ctx) error {
	var req dto.IndexRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.IndexDocuments(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
