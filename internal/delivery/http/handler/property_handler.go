package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/pkg/utils"
	"github.com/horus-listing/internal/usecase"
	"go.uber.org/zap"
)

// PropertyHandler - публичные эндпоинты каталога
type PropertyHandler struct {
	propertyUC *usecase.PropertyUseCase
	logger     *zap.Logger
}

// NewPropertyHandler - создание нового PropertyHandler
func NewPropertyHandler(propertyUC *usecase.PropertyUseCase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: propertyUC,
		logger:     logger,
	}
}

// Lookup godoc
// @Summary Поиск объявления по коду
// @Description Сокращённая карточка объявления по точному коду (например Horus001). Ошибки в плоском формате {"error": "..."}.
// @Tags Property
// @Produce json
// @Param code query string true "Код объявления"
// @Success 200 {object} domain.PropertyLookup
// @Failure 400 {object} utils.PlainErrorResponse
// @Failure 404 {object} utils.PlainErrorResponse
// @Failure 405 {object} utils.PlainErrorResponse
// @Failure 500 {object} utils.PlainErrorResponse
// @Router /api/property [get]
func (h *PropertyHandler) Lookup(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		c.Set(fiber.HeaderAllow, fiber.MethodGet)
		return utils.SendPlainError(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	lookup, err := h.propertyUC.Lookup(c.Context(), c.Query("code"))
	switch {
	case err == nil:
		return c.JSON(lookup)
	case stderrors.Is(err, errors.ErrPropertyCodeRequired):
		return utils.SendPlainError(c, fiber.StatusBadRequest, "Property code is required")
	case stderrors.Is(err, errors.ErrPropertyNotFound):
		return utils.SendPlainError(c, fiber.StatusNotFound, "Property not found")
	default:
		h.logger.Error("Error fetching property by code", zap.Error(err))
		return utils.SendPlainError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// List godoc
// @Summary Каталог объявлений с фильтрами
// @Description Все объявления, отфильтрованные по параметрам формы поиска. Пустые параметры не ограничивают выборку.
// @Tags Property
// @Produce json
// @Param property_code query string false "Подстрока кода, без учёта регистра"
// @Param city query string false "Город"
// @Param area query string false "Район"
// @Param property_type query string false "Тип недвижимости"
// @Param listing_type query string false "للبيع или للإيجار"
// @Param min_price query number false "Минимальная цена"
// @Param max_price query number false "Максимальная цена"
// @Param min_area query number false "Минимальная площадь"
// @Param bedrooms query int false "Спальни; 4 означает 4 и больше"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	state, err := filterState(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.propertyUC.Search(c.Context(), state)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:   result.Total,
		Matched: &result.Matched,
	})
}

// Sections godoc
// @Summary Блоки главной страницы
// @Tags Property
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SectionsResponse}
// @Router /api/v1/properties/sections [get]
func (h *PropertyHandler) Sections(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.propertyUC.Sections(c.Context()), nil)
}

// Filters godoc
// @Summary Значения для формы поиска
// @Tags Property
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterOptionsResponse}
// @Router /api/v1/properties/filters [get]
func (h *PropertyHandler) Filters(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.propertyUC.FilterOptions(), nil)
}

// Get godoc
// @Summary Карточка объявления
// @Tags Property
// @Produce json
// @Param id path string true "UUID объявления"
// @Success 200 {object} utils.SuccessResponse{data=domain.PublicProperty}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	property, err := h.propertyUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, property, nil)
}

// filterState собирает состояние фильтра из query-параметров
func filterState(c *fiber.Ctx) (domain.FilterState, error) {
	var state domain.FilterState
	for _, key := range domain.FilterKeys {
		value := c.Query(key)
		if value == "" {
			continue
		}

		var err error
		if state, err = state.Set(key, value); err != nil {
			return domain.FilterState{}, errors.ErrInvalidFilter.WithDetails(map[string]interface{}{"key": key})
		}
	}
	return state, nil
}
