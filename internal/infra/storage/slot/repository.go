package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/pkg/dbmetrics"
	"github.com/turfly/TurfBookingService/pkg/psqlbuilder"
	"github.com/turfly/TurfBookingService/pkg/types"
)

// DBExecutor общий интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

var slotColumns = []string{
	"id",
	"venue_id",
	"slot_date",
	"start_time",
	"end_time",
	"is_booked",
}

// Repository репозиторий слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkUpsert идемпотентно вставляет пачку слотов
// Конфликт по натуральному ключу (venue_id, slot_date, start_time, end_time)
// игнорируется, поэтому повторная генерация пересекающегося окна не создает
// дубликатов и не сбрасывает is_booked существующих слотов
func (r *Repository) BulkUpsert(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns("venue_id", "slot_date", "start_time", "end_time", "is_booked")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.VenueID, s.SlotDate, s.StartTime, s.EndTime, s.IsBooked)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (venue_id, slot_date, start_time, end_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: BulkUpsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BulkUpsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List получает слоты по фильтру, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		OrderBy("slot_date ASC, start_time ASC")

	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_date": *filter.Date})
	}
	if filter.IsBooked != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": *filter.IsBooked})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByWindow получает слот по натуральному ключу
func (r *Repository) GetByWindow(
	ctx context.Context,
	venueID int64,
	date time.Time,
	startTime, endTime types.TimeString,
) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{
			"venue_id":   venueID,
			"slot_date":  date,
			"start_time": startTime,
			"end_time":   endTime,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.VenueID,
		&s.SlotDate,
		&s.StartTime,
		&s.EndTime,
		&s.IsBooked,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// SetBooked выставляет флаг занятости слота по натуральному ключу
// Возвращает ErrSlotNotFound, если слот для этого окна не заводился:
// журнал бронирований авторитетен, инвентарь слотов — производное
// представление, поэтому вызывающая сторона может игнорировать эту ошибку
func (r *Repository) SetBooked(
	ctx context.Context,
	venueID int64,
	date time.Time,
	startTime, endTime types.TimeString,
	isBooked bool,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_booked", isBooked).
		Where(squirrel.Eq{
			"venue_id":   venueID,
			"slot_date":  date,
			"start_time": startTime,
			"end_time":   endTime,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		err := rows.Scan(
			&s.ID,
			&s.VenueID,
			&s.SlotDate,
			&s.StartTime,
			&s.EndTime,
			&s.IsBooked,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
