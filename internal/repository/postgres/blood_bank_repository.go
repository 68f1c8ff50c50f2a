package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	apperrors "github.com/donor-matching-service/internal/pkg/errors"
)

const bloodBankColumns = `
	b.id::text AS id, b.name, b.location, b.latitude, b.longitude,
	b.operating_hours, b.is_open, b.contact, b.email
`

type bloodBankRow struct {
	ID             string   `db:"id"`
	Name           string   `db:"name"`
	Location       *string  `db:"location"`
	Latitude       *float64 `db:"latitude"`
	Longitude      *float64 `db:"longitude"`
	OperatingHours *string  `db:"operating_hours"`
	IsOpen         bool     `db:"is_open"`
	Contact        *string  `db:"contact"`
	Email          *string  `db:"email"`
}

type inventoryRow struct {
	BankID     string `db:"bank_id"`
	BloodGroup string `db:"blood_group"`
	Units      int    `db:"units"`
}

func (r bloodBankRow) toDomain(inventory map[domain.BloodGroup]int) domain.Candidate {
	return domain.NewBloodBankCandidate(
		r.ID, r.Name, stringOrEmpty(r.Location),
		coordinateOf(r.Latitude, r.Longitude),
		domain.BloodBankInfo{
			Inventory:      inventory,
			OperatingHours: stringOrEmpty(r.OperatingHours),
			IsOpen:         r.IsOpen,
			Contact:        stringOrEmpty(r.Contact),
			Email:          stringOrEmpty(r.Email),
		},
	)
}

type bloodBankRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBloodBankRepository(db *DB) repository.BloodBankRepository {
	return &bloodBankRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *bloodBankRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var row bloodBankRow
	err := r.db.GetContext(ctx, &row, `SELECT `+bloodBankColumns+` FROM blood_banks b WHERE b.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get blood bank by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	inventories, err := r.loadInventory(ctx, []string{row.ID})
	if err != nil {
		return nil, err
	}

	c := row.toDomain(inventories[row.ID])
	return &c, nil
}

func (r *bloodBankRepository) Find(ctx context.Context, q repository.CandidateQuery) ([]domain.Candidate, error) {
	var b queryBuilder
	if q.BloodGroup != "" {
		b.add(`EXISTS (
			SELECT 1 FROM blood_inventory i
			WHERE i.bank_id = b.id AND i.blood_group = %s AND i.units > 0
		)`, string(q.BloodGroup))
	}
	b.addArea("b.latitude", "b.longitude", q.Area)

	query := `SELECT ` + bloodBankColumns + ` FROM blood_banks b` + b.where() + ` ORDER BY b.name, b.id`

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var rows []bloodBankRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to find blood banks", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	if len(rows) == 0 {
		return []domain.Candidate{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	inventories, err := r.loadInventory(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, row.toDomain(inventories[row.ID]))
	}
	return candidates, nil
}

// loadInventory загружает запасы крови для набора банков одним запросом
func (r *bloodBankRepository) loadInventory(ctx context.Context, bankIDs []string) (map[string]map[domain.BloodGroup]int, error) {
	query := `
		SELECT bank_id::text AS bank_id, blood_group, units
		FROM blood_inventory
		WHERE bank_id = ANY($1::uuid[])
	`

	var rows []inventoryRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, pq.Array(bankIDs)); err != nil {
		r.logger.Error("Failed to load blood inventory", zap.Int("banks", len(bankIDs)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	result := make(map[string]map[domain.BloodGroup]int, len(bankIDs))
	for _, row := range rows {
		inv, ok := result[row.BankID]
		if !ok {
			inv = make(map[domain.BloodGroup]int)
			result[row.BankID] = inv
		}
		inv[domain.BloodGroup(row.BloodGroup)] = row.Units
	}
	return result, nil
}
