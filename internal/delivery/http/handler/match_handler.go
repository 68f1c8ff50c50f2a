package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/donor-matching-service/internal/pkg/errors"
	"github.com/donor-matching-service/internal/pkg/utils"
	"github.com/donor-matching-service/internal/pkg/validator"
	"github.com/donor-matching-service/internal/usecase"
	"github.com/donor-matching-service/internal/usecase/dto"
)

// MatchHandler - обработчик поиска ближайших доноров, банков крови и поставщиков кислорода
type MatchHandler struct {
	matchUC *usecase.MatchUseCase
	logger  *zap.Logger
}

// NewMatchHandler - создание нового MatchHandler
func NewMatchHandler(matchUC *usecase.MatchUseCase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
		logger:  logger,
	}
}

// SearchMatches godoc
// @Summary Поиск ближайших кандидатов
// @Description Фильтрует кандидатов по группе крови и тексту локации, затем сортирует по расстоянию до искателя. Кандидаты без координат и за пределами радиуса отбрасываются.
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body dto.MatchSearchRequest true "Координаты искателя и фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.MatchSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/matches/search [post]
func (h *MatchHandler) SearchMatches(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.MatchSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.matchUC.SearchMatches(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, searchMeta(result, start))
}

// SearchDonors godoc
// @Summary Поиск доноров и банков крови
// @Description Доступные доноры нужной группы и банки крови с ненулевым запасом этой группы, одним списком по удалённости
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body dto.DonorSearchRequest true "Координаты искателя и группа крови"
// @Success 200 {object} utils.SuccessResponse{data=dto.MatchSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/donors/search [post]
func (h *MatchHandler) SearchDonors(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.DonorSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.matchUC.SearchDonors(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, searchMeta(result, start))
}

// SearchOxygen godoc
// @Summary Поиск поставщиков кислорода
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body dto.OxygenSearchRequest true "Координаты искателя"
// @Success 200 {object} utils.SuccessResponse{data=dto.MatchSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/oxygen/search [post]
func (h *MatchHandler) SearchOxygen(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.OxygenSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.matchUC.SearchOxygen(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, searchMeta(result, start))
}

// GetDonor godoc
// @Summary Донор по ID
// @Tags Matching
// @Produce json
// @Param id path string true "ID донора"
// @Success 200 {object} utils.SuccessResponse{data=dto.CandidateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/donors/{id} [get]
func (h *MatchHandler) GetDonor(c *fiber.Ctx) error {
	result, err := h.matchUC.GetDonor(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetOxygenSupplier godoc
// @Summary Поставщик кислорода по ID
// @Tags Matching
// @Produce json
// @Param id path string true "ID поставщика"
// @Success 200 {object} utils.SuccessResponse{data=dto.CandidateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/oxygen/{id} [get]
func (h *MatchHandler) GetOxygenSupplier(c *fiber.Ctx) error {
	result, err := h.matchUC.GetOxygenSupplier(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func searchMeta(result *dto.MatchSearchResponse, start time.Time) *utils.Meta {
	return &utils.Meta{
		Total:    result.Total,
		Cached:   result.Cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	}
}
