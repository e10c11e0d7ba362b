package generate_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueId must be positive", ErrInvalidInput)
	}

	if req.WindowStart.IsZero() || req.WindowEnd.IsZero() {
		return fmt.Errorf("%w: windowStart and windowEnd are required", ErrInvalidInput)
	}

	// Окно — полуинтервал ненулевой длины
	if !req.WindowStart.Before(req.WindowEnd) {
		return ErrInvalidWindow
	}

	return nil
}
