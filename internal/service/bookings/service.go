package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfly/TurfBookingService/internal/domain"
	bookingRepo "github.com/turfly/TurfBookingService/internal/infra/storage/booking"
	slotRepo "github.com/turfly/TurfBookingService/internal/infra/storage/slot"
	"github.com/turfly/TurfBookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
// Создание бронирований — отдельный usecase; здесь чтение, отмена и переходы
// статусов (включая внешний триггер завершения оплаты)
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу; отменённые включаются по запросу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCustomerBookings: invalid status=%v for customer=%d", req.Status, req.CustomerID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена и освобождение слота выполняются одной транзакцией: окно снова
// становится доступным для бронирования сразу после фиксации.
// Отменённое бронирование сохраняется для аудита
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, req.CustomerID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отменить можно только собственное бронирование
	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", req.CustomerID, bookingID)
		return ErrAccessDenied
	}

	// cancelled — терминальный статус
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отмена бронирования и освобождение слота — одна транзакция
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Возвращаем слот в доступные; отсутствие строки слота допустимо
		err := s.slotRepo.SetBooked(txCtx, booking.VenueID, booking.BookingDate, booking.StartTime, booking.EndTime, false)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: Cancel - failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d, slot released", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования и/или статус оплаты
// Переходы статуса бронирования: pending -> confirmed (завершение оплаты,
// внешний триггер). Отмена выполняется только через Cancel, чтобы
// освобождение слота нельзя было обойти
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d, status=%v, paymentStatus=%v",
		bookingID, req.Status, req.PaymentStatus)

	if req.Status == nil && req.PaymentStatus == nil {
		return nil, fmt.Errorf("%w: status or paymentStatus is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	nextStatus := booking.Status
	nextPayment := booking.PaymentStatus

	if req.PaymentStatus != nil {
		payment, err := models.ToDomainPaymentStatus(*req.PaymentStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid paymentStatus=%s for booking id=%d", *req.PaymentStatus, bookingID)
			return nil, fmt.Errorf("%w: invalid paymentStatus", ErrInvalidInput)
		}
		nextPayment = payment

		// Завершение оплаты подтверждает ожидающее бронирование
		if payment == domain.PaymentCompleted && booking.Status == domain.StatusPending {
			nextStatus = domain.StatusConfirmed
		}
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", *req.Status, bookingID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		if status == domain.StatusCancelled {
			// Отмена идёт через Cancel, который освобождает слот
			return nil, fmt.Errorf("%w: use the cancel endpoint to cancel a booking", ErrInvalidInput)
		}
		nextStatus = status
	}

	if nextStatus != booking.Status && !booking.CanTransitionTo(nextStatus) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking id=%d",
			booking.Status, nextStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if nextStatus != booking.Status {
			if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, nextStatus); err != nil {
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
			}
		}
		if nextPayment != booking.PaymentStatus {
			if err := s.bookingRepo.UpdatePaymentStatus(txCtx, bookingID, nextPayment); err != nil {
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})

	if err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", bookingID, err)
		return nil, err
	}

	booking.Status = nextStatus
	booking.PaymentStatus = nextPayment

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s, paymentStatus=%s",
		bookingID, nextStatus, nextPayment)
	return models.FromDomainBooking(booking), nil
}
