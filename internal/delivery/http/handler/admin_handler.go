package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/utils"
	"github.com/horus-listing/internal/usecase"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
)

// AdminHandler - управление объявлениями из админки
type AdminHandler struct {
	propertyUC *usecase.PropertyUseCase
	logger     *zap.Logger
}

func NewAdminHandler(propertyUC *usecase.PropertyUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		propertyUC: propertyUC,
		logger:     logger,
	}
}

// ListProperties godoc
// @Summary Объявления с приватными полями
// @Description Те же фильтры, что у публичного каталога
// @Tags Admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} utils.SuccessResponse{data=dto.AdminSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/admin/properties [get]
func (h *AdminHandler) ListProperties(c *fiber.Ctx) error {
	state, err := filterState(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.propertyUC.AdminList(c.Context(), state)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:   result.Total,
		Matched: &result.Matched,
	})
}

// GetProperty godoc
// @Summary Полная запись объявления
// @Tags Admin
// @Produce json
// @Security AdminKey
// @Param id path string true "UUID объявления"
// @Success 200 {object} utils.SuccessResponse{data=domain.Property}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/properties/{id} [get]
func (h *AdminHandler) GetProperty(c *fiber.Ctx) error {
	property, err := h.propertyUC.AdminGet(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, property, nil)
}

// NextCode godoc
// @Summary Следующий свободный код
// @Tags Admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} utils.SuccessResponse{data=dto.NextCodeResponse}
// @Router /api/v1/admin/properties/next-code [get]
func (h *AdminHandler) NextCode(c *fiber.Ctx) error {
	code, err := h.propertyUC.NextCode(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NextCodeResponse{Code: code}, nil)
}

// CreateProperty godoc
// @Summary Добавить объявление
// @Description Без property_code код генерируется автоматически
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body dto.PropertyRequest true "Объявление"
// @Success 201 {object} utils.SuccessResponse{data=domain.Property}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/admin/properties [post]
func (h *AdminHandler) CreateProperty(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	property, err := h.propertyUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, property)
}

// UpdateProperty godoc
// @Summary Изменить объявление
// @Description Код менять нельзя
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "UUID объявления"
// @Param request body dto.PropertyRequest true "Объявление"
// @Success 200 {object} utils.SuccessResponse{data=domain.Property}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/admin/properties/{id} [put]
func (h *AdminHandler) UpdateProperty(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	property, err := h.propertyUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, property, nil)
}

// DeleteProperty godoc
// @Summary Удалить объявление
// @Tags Admin
// @Security AdminKey
// @Param id path string true "UUID объявления"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/properties/{id} [delete]
func (h *AdminHandler) DeleteProperty(c *fiber.Ctx) error {
	if err := h.propertyUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
