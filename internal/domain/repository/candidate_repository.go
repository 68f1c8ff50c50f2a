package repository

import (
	"context"

	"github.com/donor-matching-service/internal/domain"
)

// CandidateQuery - предварительный фильтр выборки кандидатов в хранилище.
// Пустые поля не ограничивают выборку; окончательная фильтрация делается в matching.
// Текст локации сюда не входит: его сравнивает только matching.Filter (Unicode case folding).
type CandidateQuery struct {
	// BloodGroup ограничивает доноров доступными донорами этой группы,
	// а банки крови - банками с ненулевым запасом этой группы
	BloodGroup domain.BloodGroup

	// Area - bounding box вокруг искателя
	Area *domain.BoundingBox
}

// DonorRepository определяет методы для работы с донорами
type DonorRepository interface {
	// GetByID возвращает донора по ID
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)

	// Find возвращает доноров, подходящих под предфильтр
	Find(ctx context.Context, q CandidateQuery) ([]domain.Candidate, error)
}

// BloodBankRepository определяет методы для работы с банками крови
type BloodBankRepository interface {
	// GetByID возвращает банк крови вместе с запасами
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)

	// Find возвращает банки крови вместе с запасами
	Find(ctx context.Context, q CandidateQuery) ([]domain.Candidate, error)
}

// OxygenSupplierRepository определяет методы для работы с поставщиками кислорода
type OxygenSupplierRepository interface {
	// GetByID возвращает поставщика по ID
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)

	// Find возвращает поставщиков; BloodGroup игнорируется
	Find(ctx context.Context, q CandidateQuery) ([]domain.Candidate, error)
}
