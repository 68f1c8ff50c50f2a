package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewDonorRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DonorRepository {
	return postgres.NewDonorRepository(NewDBForTest(db, logger))
}

func NewBloodBankRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BloodBankRepository {
	return postgres.NewBloodBankRepository(NewDBForTest(db, logger))
}

func NewOxygenSupplierRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OxygenSupplierRepository {
	return postgres.NewOxygenSupplierRepository(NewDBForTest(db, logger))
}
