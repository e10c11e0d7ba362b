package generate_slots

import (
	"time"

	"github.com/turfly/TurfBookingService/pkg/types"
)

// Request модель запроса на генерацию слотов
// WindowStart и WindowEnd — абсолютные метки времени; перед нарезкой они
// нормализуются в настроенный гражданский часовой пояс
type Request struct {
	VenueID     int64     // ID площадки
	WindowStart time.Time // Начало окна доступности
	WindowEnd   time.Time // Конец окна доступности (полуинтервал)
}

// Response модель ответа со сгенерированными слотами
type Response struct {
	VenueID int64  // ID площадки
	Slots   []Slot // Слоты в порядке следования
}

// Slot модель сгенерированного слота
type Slot struct {
	VenueID   int64            // ID площадки
	Date      time.Time        // Календарная дата слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	IsBooked  bool             // Флаг занятости (false для новых слотов)
}
