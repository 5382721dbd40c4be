package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horus-listing/internal/pkg/utils"
	"github.com/horus-listing/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Сводка по объявлениям
// @Description Всего, на продажу, в аренду и суммарная стоимость. refresh=true пересчитывает мимо кеша.
// @Tags Admin
// @Produce json
// @Security AdminKey
// @Param refresh query bool false "Пересчитать"
// @Success 200 {object} utils.SuccessResponse{data=domain.PropertyStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/admin/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	get := h.statsUC.GetStatistics
	if c.QueryBool("refresh") {
		get = h.statsUC.RefreshStatistics
	}

	stats, err := get(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
