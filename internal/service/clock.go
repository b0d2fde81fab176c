package service

import (
	"time"

	"github.com/campushub/reservation-platform/internal/timeslot"
)

// Clock отдаёт текущее время. Внедряется, чтобы правила «не раньше
// сегодняшнего дня» и «не раньше текущего времени» были проверяемы в тестах.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock — часы по настенному времени процесса.
func SystemClock() Clock { return systemClock{} }

// Текущая дата и время часов в литеральном строковом виде.
func today(c Clock) string     { return c.Now().Format(timeslot.DateLayout) }
func timeOfDay(c Clock) string { return c.Now().Format("15:04") }
