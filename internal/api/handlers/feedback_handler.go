package handlers

import (
	"budgetboard/internal/dto"
	"budgetboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	logger          *zap.Logger
}

func NewFeedbackHandler(feedbackService *service.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Store one feedback entry with a 1-5 star rating
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Feedback entry"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Rating < service.MinRating || req.Rating > service.MaxRating {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	entry, err := h.feedbackService.Submit(req.Text, req.Rating)
	if err != nil {
		if err == service.ErrEmptyFeedback {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Feedback text is required",
			})
		}
		h.logger.Error("Failed to store feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FeedbackResponse{
		Text:   entry.Text,
		Rating: entry.Rating,
	})
}

// ListFeedback godoc
// @Summary List stored feedback
// @Description All feedback entries in submission order
// @Tags feedback
// @Produce json
// @Success 200 {array} dto.FeedbackResponse
// @Router /api/v1/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	entries := h.feedbackService.Entries()
	out := make([]dto.FeedbackResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.FeedbackResponse{Text: e.Text, Rating: e.Rating}
	}
	return c.JSON(out)
}

// ExportFeedback godoc
// @Summary Download feedback as CSV
// @Description The stored feedback in the same format as the persisted file
// @Tags feedback
// @Produce plain
// @Success 200 {string} string "CSV payload"
// @Router /api/v1/feedback/export [get]
func (h *FeedbackHandler) ExportFeedback(c *fiber.Ctx) error {
	data, err := h.feedbackService.Export()
	if err != nil {
		h.logger.Error("Failed to export feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export feedback",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="feedback.csv"`)
	return c.Send(data)
}
