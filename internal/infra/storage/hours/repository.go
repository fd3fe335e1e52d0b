package hours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/psqlbuilder"
)

var hoursColumns = []string{
	"id",
	"salon_id",
	"weekday",
	"open_time",
	"close_time",
}

// Repository репозиторий для работы с окнами рабочих часов салона.
// Раздельные смены хранятся как несколько строк на один день недели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySalon получает все окна рабочих часов салона, упорядоченные
// по дню недели и времени открытия
func (r *Repository) GetBySalon(ctx context.Context, salonID int64) ([]*domain.WorkingHoursWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC, open_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetBySalonAndWeekday получает окна рабочих часов салона на конкретный
// день недели. Пустой слайс означает выходной
func (r *Repository) GetBySalonAndWeekday(ctx context.Context, salonID int64, weekday time.Weekday) ([]*domain.WorkingHoursWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"salon_id": salonID, "weekday": int(weekday)}).
		OrderBy("open_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ReplaceForWeekday заменяет окна рабочих часов на конкретный день недели.
// Старые окна удаляются, новые вставляются одним запросом.
// Пустой слайс windows делает день выходным.
// Вызывается внутри транзакции (через dbmetrics.WithTx)
func (r *Repository) ReplaceForWeekday(ctx context.Context, salonID int64, weekday time.Weekday, windows []*domain.WorkingHoursWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"salon_id": salonID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns("salon_id", "weekday", "open_time", "close_time")

	for _, window := range windows {
		insertBuilder = insertBuilder.Values(salonID, int(weekday), window.OpenTime, window.CloseTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.WorkingHoursWindow, error) {
	windows := make([]*domain.WorkingHoursWindow, 0)

	for rows.Next() {
		var window domain.WorkingHoursWindow
		var weekday int

		err := rows.Scan(
			&window.ID,
			&window.SalonID,
			&weekday,
			&window.OpenTime,
			&window.CloseTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.Weekday = time.Weekday(weekday)
		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
