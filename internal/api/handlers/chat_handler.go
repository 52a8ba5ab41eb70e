package handlers

import (
	"budgetboard/internal/dto"
	"budgetboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask godoc
// @Summary Ask the budget assistant
// @Description Answer a keyword query against the same filtered view the dashboard shows
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Query and current selection"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply := h.chatService.Respond(req.Query, service.Filter{
		Departments: req.Departments,
		Vendors:     req.Vendors,
		Search:      req.Search,
		Currency:    req.Currency,
	})

	return c.JSON(dto.ChatResponse{Reply: reply})
}
