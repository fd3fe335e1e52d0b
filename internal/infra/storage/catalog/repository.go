package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/psqlbuilder"
)

var treatmentColumns = []string{
	"id",
	"salon_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"is_visible",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом услуг салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	treatment, err := r.scanTreatment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTreatmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan treatment: %v", ErrScanRow, err)
	}

	return treatment, nil
}

// GetBySalon получает список услуг салона.
// При visibleOnly=true скрытые услуги не возвращаются
func (r *Repository) GetBySalon(ctx context.Context, salonID int64, visibleOnly bool) ([]*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("name ASC")

	if visibleOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_visible": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		treatment, err := r.scanTreatment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySalon - scan row: %v", ErrScanRow, err)
		}
		treatments = append(treatments, treatment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - rows error: %v", ErrScanRow, err)
	}

	return treatments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanTreatment(row rowScanner) (*domain.Treatment, error) {
	var treatment domain.Treatment
	var description sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&treatment.ID,
		&treatment.SalonID,
		&treatment.Name,
		&description,
		&treatment.DurationMinutes,
		&treatment.Price,
		&treatment.IsVisible,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		treatment.Description = &description.String
	}
	treatment.CreatedAt = createdAt.Time
	treatment.UpdatedAt = updatedAt.Time

	return &treatment, nil
}
