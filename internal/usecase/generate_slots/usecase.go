package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	accountClient "github.com/turfly/TurfBookingService/internal/integrations/accountservice"
)

// UseCase use case генерации слотов по окну доступности владельца
type UseCase struct {
	slotRepo      SlotRepository
	accountClient AccountServiceClient
	slotDuration  time.Duration
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// slotDurationMinutes и timezone приходят из конфигурации сервиса
func NewUseCase(
	slotRepo SlotRepository,
	accountClient AccountServiceClient,
	slotDurationMinutes int,
	timezone string,
	logger Logger,
) (*UseCase, error) {
	if slotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrInvalidInput)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidInput, timezone, err)
	}

	return &UseCase{
		slotRepo:      slotRepo,
		accountClient: accountClient,
		slotDuration:  time.Duration(slotDurationMinutes) * time.Minute,
		location:      loc,
		logger:        logger,
	}, nil
}

// Execute выполняет генерацию и идемпотентное сохранение слотов
// Повторный запуск по пересекающемуся окну не создает дубликатов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: venue=%d, window=%s..%s",
		req.VenueID, req.WindowStart.Format(time.RFC3339), req.WindowEnd.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.accountClient.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, accountClient.ErrVenueNotFound) {
			uc.logger.Warn("GenerateSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Нарезаем окно на слоты (чистая операция)
	slots := cutSlots(req.VenueID, req.WindowStart, req.WindowEnd, uc.slotDuration, uc.location)

	// 4. Идемпотентно сохраняем
	// Upsert по натуральному ключу безопасен для внутреннего ретрая при
	// транзиентной ошибке хранилища, но ретрай оставлен вызывающей стороне
	if err := uc.slotRepo.BulkUpsert(ctx, slots); err != nil {
		uc.logger.Error("GenerateSlots: failed to upsert slots: %v", err)
		return nil, fmt.Errorf("%w: failed to upsert slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: generated %d slots for venue=%d", len(slots), req.VenueID)

	// Конвертируем в response
	response := &Response{
		VenueID: req.VenueID,
		Slots:   make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, Slot{
			VenueID:   s.VenueID,
			Date:      s.SlotDate,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsBooked:  s.IsBooked,
		})
	}

	return response, nil
}
