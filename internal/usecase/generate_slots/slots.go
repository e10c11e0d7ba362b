package generate_slots

import (
	"time"

	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/pkg/types"
)

// cutSlots нарезает окно доступности на слоты фиксированной длины
//
// Обе границы окна нормализуются в loc до разбиения на дату и время суток,
// поэтому сохранённое представление не зависит от часового пояса и
// сравнимо как строки.
//
// Окно сначала режется по границам суток в loc: слот никогда не пересекает
// полночь. Внутри каждого сегмента от его начала с шагом slotDuration
// отрезается по одному слоту; неполный хвост короче slotDuration
// отбрасывается молча — слоты частичной длины никогда не выставляются на
// бронирование. Слот, упирающийся ровно в полночь, хранится с концом
// types.EndOfDay ("24:00") на дате начала, так что для каждого слота
// выполняется start < end. Функция чистая, персистентность — забота
// репозитория
func cutSlots(
	venueID int64,
	windowStart, windowEnd time.Time,
	slotDuration time.Duration,
	loc *time.Location,
) []*domain.Slot {
	start := windowStart.In(loc)
	end := windowEnd.In(loc)

	slots := make([]*domain.Slot, 0)

	for segStart := start; segStart.Before(end); {
		midnight := nextMidnight(segStart)
		segEnd := end
		if midnight.Before(segEnd) {
			segEnd = midnight
		}

		for current := segStart; ; current = current.Add(slotDuration) {
			slotEnd := current.Add(slotDuration)
			if slotEnd.After(segEnd) {
				break
			}

			endTime := types.NewTimeString(slotEnd)
			if slotEnd.Equal(midnight) {
				endTime = types.EndOfDay
			}

			slots = append(slots, &domain.Slot{
				VenueID:   venueID,
				SlotDate:  civilDate(current),
				StartTime: types.NewTimeString(current),
				EndTime:   endTime,
				IsBooked:  false,
			})
		}

		segStart = midnight
	}

	return slots
}

// nextMidnight возвращает полночь следующего дня в зоне t
func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// civilDate обнуляет время, оставляя календарную дату в UTC полночь
// DATE колонка в PostgreSQL не несёт часового пояса; UTC полночь дает
// стабильное сравнение дат при выборках
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
