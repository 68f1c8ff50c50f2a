package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/matching"
	apperrors "github.com/donor-matching-service/internal/pkg/errors"
	"github.com/donor-matching-service/internal/usecase/dto"
)

// BloodBankUseCase - каталог банков крови и проверка наличия
type BloodBankUseCase struct {
	bankRepo repository.BloodBankRepository
	logger   *zap.Logger
}

// NewBloodBankUseCase - создание нового BloodBankUseCase
func NewBloodBankUseCase(bankRepo repository.BloodBankRepository, logger *zap.Logger) *BloodBankUseCase {
	return &BloodBankUseCase{
		bankRepo: bankRepo,
		logger:   logger,
	}
}

// ListBloodBanks - все банки крови, опционально по подстроке названия/района
func (uc *BloodBankUseCase) ListBloodBanks(ctx context.Context, location string) (*dto.BloodBankListResponse, error) {
	banks, err := uc.bankRepo.Find(ctx, repository.CandidateQuery{})
	if err != nil {
		uc.logger.Error("Failed to list blood banks", zap.String("location", location), zap.Error(err))
		return nil, err
	}
	banks = matching.Filter(banks, domain.SearchCriteria{LocationText: location})

	result := make([]dto.BloodBankResponse, 0, len(banks))
	for _, b := range banks {
		result = append(result, dto.ConvertBloodBank(b))
	}

	return &dto.BloodBankListResponse{
		BloodBanks: result,
		Total:      len(result),
	}, nil
}

// GetBloodBank - банк крови по ID
func (uc *BloodBankUseCase) GetBloodBank(ctx context.Context, id string) (*dto.BloodBankResponse, error) {
	bank, err := uc.bankRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperrors.ErrBloodBankNotFound
	}
	if err != nil {
		uc.logger.Error("Failed to get blood bank", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.ConvertBloodBank(*bank)
	return &resp, nil
}

// CheckBloodAvailability reports which banks hold at least one unit of the
// requested group. An unknown group or bank is reported as unavailable, not as an error.
func (uc *BloodBankUseCase) CheckBloodAvailability(ctx context.Context, req dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	resp := &dto.AvailabilityResponse{
		BloodGroup: req.BloodGroup,
		Locations:  []dto.AvailabilityLocation{},
	}

	group, ok := domain.ParseBloodGroup(req.BloodGroup)
	if !ok {
		return resp, nil
	}
	resp.BloodGroup = group.String()

	var banks []domain.Candidate
	if req.BankID != "" {
		bank, err := uc.bankRepo.GetByID(ctx, req.BankID)
		if errors.Is(err, domain.ErrNotFound) {
			return resp, nil
		}
		if err != nil {
			uc.logger.Error("Failed to get blood bank", zap.String("id", req.BankID), zap.Error(err))
			return nil, err
		}
		banks = []domain.Candidate{*bank}
	} else {
		var err error
		banks, err = uc.bankRepo.Find(ctx, repository.CandidateQuery{BloodGroup: group})
		if err != nil {
			uc.logger.Error("Failed to find blood banks", zap.String("blood_group", group.String()), zap.Error(err))
			return nil, err
		}
	}

	for _, b := range banks {
		units := b.BloodBank.Units(group)
		if units <= 0 {
			continue
		}
		resp.Locations = append(resp.Locations, dto.AvailabilityLocation{
			BankID: b.ID,
			Name:   b.Name,
			Units:  units,
		})
	}
	resp.Available = len(resp.Locations) > 0

	return resp, nil
}
