package generate_slots

import (
	"context"

	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/internal/integrations/accountservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// BulkUpsert идемпотентно вставляет пачку слотов по натуральному ключу
	BulkUpsert(ctx context.Context, slots []*domain.Slot) error
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*accountservice.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
