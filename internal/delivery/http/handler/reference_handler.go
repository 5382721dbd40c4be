package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/utils"
	"github.com/horus-listing/internal/usecase"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReferenceHandler - справочник городов и районов
type ReferenceHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewReferenceHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// Cities godoc
// @Summary Список городов
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.City}
// @Router /api/v1/cities [get]
func (h *ReferenceHandler) Cities(c *fiber.Ctx) error {
	cities := h.referenceUC.Cities(c.Context())
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// AreasByCity godoc
// @Summary Районы города
// @Tags Reference
// @Produce json
// @Param id path string true "UUID города"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Area}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id}/areas [get]
func (h *ReferenceHandler) AreasByCity(c *fiber.Ctx) error {
	areas, err := h.referenceUC.AreasByCity(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, areas, &utils.Meta{Total: len(areas)})
}

// AreasByCityName godoc
// @Summary Районы по названию города
// @Description Пустое или неизвестное название даёт пустой список
// @Tags Reference
// @Produce json
// @Param city query string false "Название города"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Area}
// @Router /api/v1/areas [get]
func (h *ReferenceHandler) AreasByCityName(c *fiber.Ctx) error {
	areas := h.referenceUC.AreasByCityName(c.Context(), c.Query("city"))
	return utils.SendSuccess(c, areas, &utils.Meta{Total: len(areas)})
}

// CreateCity godoc
// @Summary Добавить город
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body dto.CityRequest true "Город"
// @Success 201 {object} utils.SuccessResponse{data=domain.City}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/admin/cities [post]
func (h *ReferenceHandler) CreateCity(c *fiber.Ctx) error {
	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.referenceUC.CreateCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, city)
}

// UpdateCity godoc
// @Summary Переименовать город
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "UUID города"
// @Param request body dto.CityRequest true "Город"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/cities/{id} [put]
func (h *ReferenceHandler) UpdateCity(c *fiber.Ctx) error {
	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.referenceUC.UpdateCity(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, city, nil)
}

// DeleteCity godoc
// @Summary Удалить город вместе с районами
// @Tags Admin
// @Security AdminKey
// @Param id path string true "UUID города"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/cities/{id} [delete]
func (h *ReferenceHandler) DeleteCity(c *fiber.Ctx) error {
	if err := h.referenceUC.DeleteCity(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateArea godoc
// @Summary Добавить район
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "UUID города"
// @Param request body dto.AreaRequest true "Район"
// @Success 201 {object} utils.SuccessResponse{data=domain.Area}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/admin/cities/{id}/areas [post]
func (h *ReferenceHandler) CreateArea(c *fiber.Ctx) error {
	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	area, err := h.referenceUC.CreateArea(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, area)
}

// UpdateArea godoc
// @Summary Переименовать район
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "UUID района"
// @Param request body dto.AreaRequest true "Район"
// @Success 200 {object} utils.SuccessResponse{data=domain.Area}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/areas/{id} [put]
func (h *ReferenceHandler) UpdateArea(c *fiber.Ctx) error {
	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	area, err := h.referenceUC.UpdateArea(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, area, nil)
}

// DeleteArea godoc
// @Summary Удалить район
// @Tags Admin
// @Security AdminKey
// @Param id path string true "UUID района"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/areas/{id} [delete]
func (h *ReferenceHandler) DeleteArea(c *fiber.Ctx) error {
	if err := h.referenceUC.DeleteArea(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCache godoc
// @Summary Сбросить кеш справочника
// @Tags Admin
// @Security AdminKey
// @Success 204
// @Router /api/v1/admin/cache/clear [post]
func (h *ReferenceHandler) ClearCache(c *fiber.Ctx) error {
	h.referenceUC.ClearCache()
	h.logger.Info("Reference cache cleared by admin")
	return c.SendStatus(fiber.StatusNoContent)
}
