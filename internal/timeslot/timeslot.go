package timeslot

import (
	"errors"
	"regexp"
	"sort"
	"time"
)

var (
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// Политика бронирования кампуса. Значения заданы администрацией,
// а не выведены из данных, поэтому живут здесь как именованные константы.
const (
	// Рабочие часы кампуса.
	BusinessDayStart = "08:00"
	BusinessDayEnd   = "20:00"

	// Границы длительности одного бронирования, в минутах.
	MinDurationMinutes = 30
	MaxDurationMinutes = 480

	// Окно отметки о приходе относительно начала брони: [-15, +30] минут.
	CheckInEarlyMinutes = 15
	CheckInLateMinutes  = 30

	// Минимальная длина свободного окна, которое имеет смысл показывать.
	DefaultMinSlotMinutes = 30
)

// Все даты и времена в системе — литеральные строки "YYYY-MM-DD" и "HH:MM".
// Лексикографическое сравнение таких строк совпадает с хронологическим,
// поэтому через time.Time с таймзонами они принципиально не гоняются.
const (
	DateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Slot представляет полуоткрытый интервал [Start, End) внутри одного дня.
type Slot struct {
	Start string
	End   string
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd)
// и [bStart, bEnd). Касание границ (aEnd == bStart) пересечением не считается.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// IsValidTime проверяет, что строка имеет вид "HH:MM" (часы 00–23, минуты 00–59).
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// IsValidDate проверяет, что строка имеет вид "YYYY-MM-DD" и является
// существующей календарной датой.
func IsValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DurationMinutes возвращает длительность интервала в минутах.
// Вычисление идёт на фиксированном опорном дне, чтобы исключить
// календарную арифметику. end <= start — ошибка ErrInvalidTimeRange.
func DurationMinutes(start, end string) (int, error) {
	if !IsValidTime(start) || !IsValidTime(end) {
		return 0, ErrInvalidTimeFormat
	}
	s, err := time.Parse(timeLayout, start)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	e, err := time.Parse(timeLayout, end)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	if !e.After(s) {
		return 0, ErrInvalidTimeRange
	}
	return int(e.Sub(s) / time.Minute), nil
}

// MinutesOfDay возвращает порядковую минуту дня для времени "HH:MM".
func MinutesOfDay(s string) (int, error) {
	if !IsValidTime(s) {
		return 0, ErrInvalidTimeFormat
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// FreeSlots вычисляет свободные окна внутри дневного окна [dayStart, dayEnd)
// по списку занятых интервалов. Список не обязан быть отсортирован — сортируем
// по началу стабильно. Окна короче minSlotMinutes отбрасываются; окна,
// начинающиеся раньше dayStart, подрезаются до dayStart.
func FreeSlots(booked []Slot, dayStart, dayEnd string, minSlotMinutes int) []Slot {
	sorted := make([]Slot, len(booked))
	copy(sorted, booked)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	free := []Slot{}
	cursor := dayStart

	emit := func(start, end string) {
		if end > dayEnd {
			end = dayEnd
		}
		if start >= end {
			return
		}
		d, err := DurationMinutes(start, end)
		if err != nil || d < minSlotMinutes {
			return
		}
		free = append(free, Slot{Start: start, End: end})
	}

	for _, b := range sorted {
		if b.Start > cursor {
			emit(cursor, b.Start)
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	emit(cursor, dayEnd)

	return free
}
