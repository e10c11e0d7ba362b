package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfly/TurfBookingService/internal/domain"
	bookingRepo "github.com/turfly/TurfBookingService/internal/infra/storage/booking"
	slotRepo "github.com/turfly/TurfBookingService/internal/infra/storage/slot"
	accountClient "github.com/turfly/TurfBookingService/internal/integrations/accountservice"
)

// UseCase use case создания бронирования (booking arbitration)
//
// Порядок проверок фиксирован, каждый отказ терминален:
// обязательные поля -> клиент существует -> площадка существует ->
// вид спорта заявлен площадкой -> окно свободно.
// Проверка занятости окна и вставка выполняются одной сериализуемой
// транзакцией; там же помечается соответствующий слот
type UseCase struct {
	bookingRepo   BookingRepository
	slotRepo      SlotRepository
	accountClient AccountServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	accountClient AccountServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		accountClient: accountClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// При гонке двух заявок на одно окно выигрывает первая зафиксированная,
// проигравшая получает ErrSlotConflict
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, venue=%d, date=%s, window=%s-%s, sport=%s",
		req.CustomerID, req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Sport)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.accountClient.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, accountClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Получаем площадку
	venue, err := uc.accountClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, accountClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Проверяем, что вид спорта заявлен площадкой
	// Проверка выполняется до проверки занятости окна
	if err := validateSportOffered(venue, req.Sport); err != nil {
		uc.logger.Warn("CreateBooking: sport=%s not offered at venue id=%d", req.Sport, req.VenueID)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5-6. Проверка занятости окна и вставка одной сериализуемой транзакцией
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ищем активное бронирование точно на это окно (FOR UPDATE)
		existing, err := uc.bookingRepo.FindActiveByWindow(txCtx, req.VenueID, req.Date, req.StartTime, req.EndTime)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check window: %v", err)
			return fmt.Errorf("%w: failed to check window: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateBooking: window already taken by booking id=%d", existing.ID)
			return ErrSlotConflict
		}

		// 5.2. Создаем бронирование
		// Частичный уникальный индекс закрывает гонку двух вставок:
		// проигравшая вставка получает ErrWindowTaken
		booking := &domain.Booking{
			CustomerID:    req.CustomerID,
			VenueID:       req.VenueID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Sport:         domain.Sport(req.Sport),
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			Amount:        req.Amount,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrWindowTaken) {
				uc.logger.Warn("CreateBooking: lost insert race for venue=%d window=%s-%s",
					req.VenueID, req.StartTime, req.EndTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6. Помечаем слот занятым в той же транзакции
		// Журнал бронирований авторитетен; отсутствие строки слота допустимо
		// (бронирование на окно, для которого владелец не генерировал слоты)
		err = uc.slotRepo.SetBooked(txCtx, req.VenueID, req.Date, req.StartTime, req.EndTime, true)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Error("CreateBooking: failed to mark slot booked: %v", err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		VenueID:       result.VenueID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Sport:         string(result.Sport),
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		Amount:        result.Amount,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
