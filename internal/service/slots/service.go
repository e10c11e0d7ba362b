package slots

import (
	"context"
	"fmt"

	"github.com/turfly/TurfBookingService/internal/service/slots/models"
)

// Service сервис чтения инвентаря слотов
// Слоты — производное представление доступности; авторитетен журнал
// бронирований, поэтому здесь только выборки без мутаций
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает слоты по фильтру
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) ([]models.SlotResponse, error) {
	s.logger.Info("List: fetching slots venue=%v, date=%v, isBooked=%v", req.VenueID, req.Date, req.IsBooked)

	slots, err := s.slotRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}
