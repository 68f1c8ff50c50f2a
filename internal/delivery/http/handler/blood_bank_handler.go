package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/donor-matching-service/internal/pkg/errors"
	"github.com/donor-matching-service/internal/pkg/utils"
	"github.com/donor-matching-service/internal/pkg/validator"
	"github.com/donor-matching-service/internal/usecase"
	"github.com/donor-matching-service/internal/usecase/dto"
)

// BloodBankHandler - обработчик каталога банков крови
type BloodBankHandler struct {
	bankUC *usecase.BloodBankUseCase
	logger *zap.Logger
}

// NewBloodBankHandler - создание нового BloodBankHandler
func NewBloodBankHandler(bankUC *usecase.BloodBankUseCase, logger *zap.Logger) *BloodBankHandler {
	return &BloodBankHandler{
		bankUC: bankUC,
		logger: logger,
	}
}

// ListBloodBanks godoc
// @Summary Список банков крови
// @Tags BloodBanks
// @Produce json
// @Param location query string false "Подстрока названия или района"
// @Success 200 {object} utils.SuccessResponse{data=dto.BloodBankListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/blood-banks [get]
func (h *BloodBankHandler) ListBloodBanks(c *fiber.Ctx) error {
	location := c.Query("location")
	if len(location) > 100 {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	result, err := h.bankUC.ListBloodBanks(c.UserContext(), location)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetBloodBank godoc
// @Summary Банк крови по ID
// @Tags BloodBanks
// @Produce json
// @Param id path string true "ID банка крови"
// @Success 200 {object} utils.SuccessResponse{data=dto.BloodBankResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/blood-banks/{id} [get]
func (h *BloodBankHandler) GetBloodBank(c *fiber.Ctx) error {
	result, err := h.bankUC.GetBloodBank(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CheckAvailability godoc
// @Summary Наличие крови нужной группы
// @Description Неизвестная группа крови или банк возвращают available=false, а не ошибку
// @Tags BloodBanks
// @Produce json
// @Param blood_group query string true "Группа крови (O+, AB- ...)"
// @Param bank_id query string false "Ограничить одним банком"
// @Success 200 {object} utils.SuccessResponse{data=dto.AvailabilityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/blood-banks/availability [get]
func (h *BloodBankHandler) CheckAvailability(c *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	req.BloodGroup = restorePlus(req.BloodGroup)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bankUC.CheckBloodAvailability(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Locations),
	})
}

// restorePlus - неэкранированный "+" в query приходит пробелом: ?blood_group=O+ -> "O "
func restorePlus(group string) string {
	trimmed := strings.TrimLeft(group, " ")
	if strings.HasSuffix(trimmed, " ") && !strings.HasSuffix(strings.TrimRight(trimmed, " "), "-") {
		return strings.TrimRight(trimmed, " ") + "+"
	}
	return group
}
