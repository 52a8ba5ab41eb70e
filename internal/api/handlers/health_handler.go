package handlers

import (
	"time"

	"budgetboard/internal/dto"
	"budgetboard/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type HealthHandler struct {
	dataset    *repository.DatasetRepository
	instanceID string
}

func NewHealthHandler(dataset *repository.DatasetRepository) *HealthHandler {
	return &HealthHandler{
		dataset:    dataset,
		instanceID: uuid.NewString(),
	}
}

// Health godoc
// @Summary Liveness probe
// @Description Process status and loaded-dataset details
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:          "ok",
		InstanceID:      h.instanceID,
		DatasetRows:     h.dataset.Len(),
		DatasetLoadedAt: h.dataset.LoadedAt().UTC().Format(time.RFC3339),
	})
}
