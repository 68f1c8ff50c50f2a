package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	apperrors "github.com/donor-matching-service/internal/pkg/errors"
)

const oxygenColumns = `
	id::text AS id, name, location, address, phone, email, working_hours, latitude, longitude
`

type oxygenRow struct {
	ID           string   `db:"id"`
	Name         string   `db:"name"`
	Location     *string  `db:"location"`
	Address      *string  `db:"address"`
	Phone        *string  `db:"phone"`
	Email        *string  `db:"email"`
	WorkingHours *string  `db:"working_hours"`
	Latitude     *float64 `db:"latitude"`
	Longitude    *float64 `db:"longitude"`
}

func (r oxygenRow) toDomain() domain.Candidate {
	return domain.NewOxygenCandidate(
		r.ID, r.Name, stringOrEmpty(r.Location),
		coordinateOf(r.Latitude, r.Longitude),
		domain.OxygenInfo{
			Address:      stringOrEmpty(r.Address),
			Phone:        stringOrEmpty(r.Phone),
			Email:        stringOrEmpty(r.Email),
			WorkingHours: stringOrEmpty(r.WorkingHours),
		},
	)
}

type oxygenSupplierRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOxygenSupplierRepository(db *DB) repository.OxygenSupplierRepository {
	return &oxygenSupplierRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *oxygenSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var row oxygenRow
	err := r.db.GetContext(ctx, &row, `SELECT `+oxygenColumns+` FROM oxygen_suppliers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get oxygen supplier by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	c := row.toDomain()
	return &c, nil
}

func (r *oxygenSupplierRepository) Find(ctx context.Context, q repository.CandidateQuery) ([]domain.Candidate, error) {
	var b queryBuilder
	b.addArea("latitude", "longitude", q.Area)

	query := `SELECT ` + oxygenColumns + ` FROM oxygen_suppliers` + b.where() + ` ORDER BY name, id`

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var rows []oxygenRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to find oxygen suppliers", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, row.toDomain())
	}
	return candidates, nil
}
