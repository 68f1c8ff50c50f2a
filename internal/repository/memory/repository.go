package memory

import (
	"context"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
)

// kindRepository exposes one candidate kind of a Store through the repository interfaces.
type kindRepository struct {
	store *Store
	kind  domain.CandidateKind
}

func NewDonorRepository(store *Store) repository.DonorRepository {
	return &kindRepository{store: store, kind: domain.KindDonor}
}

func NewBloodBankRepository(store *Store) repository.BloodBankRepository {
	return &kindRepository{store: store, kind: domain.KindBloodBank}
}

func NewOxygenSupplierRepository(store *Store) repository.OxygenSupplierRepository {
	return &kindRepository{store: store, kind: domain.KindOxygenSupplier}
}

func (r *kindRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return r.store.get(ctx, r.kind, id)
}

func (r *kindRepository) Find(ctx context.Context, q repository.CandidateQuery) ([]domain.Candidate, error) {
	return r.store.find(ctx, r.kind, q)
}
