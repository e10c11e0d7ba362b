package create_booking

import (
	"fmt"

	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/internal/integrations/accountservice"
)

// validateRequest валидирует входные данные запроса
// Все поля обязательны; проверяется только форма, не бизнес-правила
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId is required", ErrMissingField)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueId is required", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrMissingField)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrMissingField)
	}

	if req.Sport == "" {
		return fmt.Errorf("%w: sport is required", ErrMissingField)
	}

	if req.Amount.IsZero() {
		return fmt.Errorf("%w: amount is required", ErrMissingField)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Окно должно быть полуинтервалом ненулевой длины
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	// Вид спорта должен быть членом закрытого перечисления
	if !domain.Sport(req.Sport).IsValid() {
		return fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, req.Sport)
	}

	return nil
}

// validateSportOffered проверяет, что вид спорта заявлен площадкой
func validateSportOffered(venue *accountservice.Venue, sport string) error {
	for _, s := range venue.Sports {
		if s == sport {
			return nil
		}
	}
	return ErrSportNotOffered
}
