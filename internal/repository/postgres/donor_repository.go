package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	apperrors "github.com/donor-matching-service/internal/pkg/errors"
)

const donorColumns = `
	id::text AS id, full_name, location, latitude, longitude,
	blood_group, availability_status, last_donation_date, gender
`

type donorRow struct {
	ID               string     `db:"id"`
	FullName         string     `db:"full_name"`
	Location         *string    `db:"location"`
	Latitude         *float64   `db:"latitude"`
	Longitude        *float64   `db:"longitude"`
	BloodGroup       string     `db:"blood_group"`
	Availability     string     `db:"availability_status"`
	LastDonationDate *time.Time `db:"last_donation_date"`
	Gender           *string    `db:"gender"`
}

func (r donorRow) toDomain() domain.Candidate {
	return domain.NewDonorCandidate(
		r.ID, r.FullName, stringOrEmpty(r.Location),
		coordinateOf(r.Latitude, r.Longitude),
		domain.DonorInfo{
			BloodGroup:       domain.BloodGroup(r.BloodGroup),
			Availability:     domain.Availability(r.Availability),
			LastDonationDate: r.LastDonationDate,
			Gender:           stringOrEmpty(r.Gender),
		},
	)
}

type donorRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewDonorRepository(db *DB) repository.DonorRepository {
	return &donorRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *donorRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var row donorRow
	err := r.db.GetContext(ctx, &row, `SELECT `+donorColumns+` FROM donors WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get donor by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	c := row.toDomain()
	return &c, nil
}

func (r *donorRepository) Find(ctx context.Context, q repository.CandidateQuery) ([]domain.Candidate, error) {
	var b queryBuilder
	if q.BloodGroup != "" {
		b.add("blood_group = %s", string(q.BloodGroup))
		b.add("availability_status = %s", string(domain.AvailabilityAvailable))
	}
	b.addArea("latitude", "longitude", q.Area)

	query := `SELECT ` + donorColumns + ` FROM donors` + b.where() + ` ORDER BY created_at, id`

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var rows []donorRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to find donors",
			zap.String("blood_group", string(q.BloodGroup)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, row.toDomain())
	}
	return candidates, nil
}
