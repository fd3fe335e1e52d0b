package loyalty

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/psqlbuilder"
)

var entryColumns = []string{
	"id",
	"client_id",
	"salon_id",
	"booking_id",
	"points",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с журналом бонусных баллов.
// Журнал append-only: баланс считается как сумма начислений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бонусных баллов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert добавляет запись о начислении баллов
func (r *Repository) Insert(ctx context.Context, entry *domain.LoyaltyEntry) (*domain.LoyaltyEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_entries").
		Columns("client_id", "salon_id", "booking_id", "points", "reason").
		Values(entry.ClientID, entry.SalonID, entry.BookingID, entry.Points, entry.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// GetBalance считает текущий баланс баллов клиента в салоне
func (r *Repository) GetBalance(ctx context.Context, clientID, salonID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(points), 0)").
		From("loyalty_entries").
		Where(squirrel.Eq{"client_id": clientID, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetBalance - build select query: %v", ErrBuildQuery, err)
	}

	var balance int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&balance); err != nil {
		return 0, fmt.Errorf("%w: GetBalance - scan balance: %v", ErrScanRow, err)
	}

	return balance, nil
}

// GetEntries получает историю начислений клиента в салоне, новые записи первыми
func (r *Repository) GetEntries(ctx context.Context, clientID, salonID int64) ([]*domain.LoyaltyEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("loyalty_entries").
		Where(squirrel.Eq{"client_id": clientID, "salon_id": salonID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEntries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.LoyaltyEntry, 0)
	for rows.Next() {
		var entry domain.LoyaltyEntry
		var bookingID sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.ClientID,
			&entry.SalonID,
			&bookingID,
			&entry.Points,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetEntries - scan row: %v", ErrScanRow, err)
		}

		if bookingID.Valid {
			entry.BookingID = &bookingID.Int64
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
