package timeslot

import (
	"errors"
	"testing"
)

func equalSlots(a, b []Slot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOverlaps_BoundaryTouchingIsNotOverlap(t *testing.T) {
	if Overlaps("09:00", "10:00", "10:00", "11:00") {
		t.Fatalf("touching intervals must not overlap")
	}
	if Overlaps("10:00", "11:00", "09:00", "10:00") {
		t.Fatalf("touching intervals must not overlap (reversed)")
	}
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	if !Overlaps("09:00", "10:00", "09:59", "10:30") {
		t.Fatalf("expected overlap")
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := [][4]string{
		{"09:00", "10:00", "09:30", "10:30"},
		{"09:00", "10:00", "10:00", "11:00"},
		{"08:00", "12:00", "09:00", "10:00"},
		{"09:00", "09:30", "14:00", "15:00"},
		{"09:00", "10:00", "09:00", "10:00"},
	}
	for _, c := range cases {
		ab := Overlaps(c[0], c[1], c[2], c[3])
		ba := Overlaps(c[2], c[3], c[0], c[1])
		if ab != ba {
			t.Fatalf("overlaps not symmetric for %v: %v vs %v", c, ab, ba)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	d, err := DurationMinutes("09:00", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 90 {
		t.Fatalf("duration = %d, want 90", d)
	}
}

func TestDurationMinutes_EndNotAfterStart(t *testing.T) {
	if _, err := DurationMinutes("10:00", "10:00"); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
	if _, err := DurationMinutes("10:00", "09:00"); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestDurationMinutes_BadFormat(t *testing.T) {
	if _, err := DurationMinutes("9:00", "10:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "23:59", "14:05"}
	for _, s := range valid {
		if !IsValidTime(s) {
			t.Fatalf("%q must be valid", s)
		}
	}
	invalid := []string{"24:00", "8:00", "12:60", "12-30", "12:3", "", "noon"}
	for _, s := range invalid {
		if IsValidTime(s) {
			t.Fatalf("%q must be invalid", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2025-09-01") {
		t.Fatalf("expected valid date")
	}
	invalid := []string{"2025-13-01", "2025-02-30", "25-09-01", "2025/09/01", "2025-9-1", ""}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Fatalf("%q must be invalid", s)
		}
	}
}

func TestFreeSlots_Basic(t *testing.T) {
	booked := []Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "12:00"},
	}
	got := FreeSlots(booked, "08:00", "20:00", 60)
	want := []Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "12:00", End: "20:00"},
	}
	if !equalSlots(got, want) {
		t.Fatalf("free slots = %+v, want %+v", got, want)
	}
}

func TestFreeSlots_UnsortedInput(t *testing.T) {
	booked := []Slot{
		{Start: "11:00", End: "12:00"},
		{Start: "09:00", End: "10:00"},
	}
	got := FreeSlots(booked, "08:00", "20:00", 60)
	want := []Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "12:00", End: "20:00"},
	}
	if !equalSlots(got, want) {
		t.Fatalf("free slots = %+v, want %+v", got, want)
	}
}

func TestFreeSlots_ShortGapsDropped(t *testing.T) {
	booked := []Slot{
		{Start: "08:30", End: "10:00"},
		{Start: "10:15", End: "19:30"},
	}
	got := FreeSlots(booked, "08:00", "20:00", 30)
	// 08:00–08:30 ровно 30 минут — остаётся; 10:00–10:15 и 19:30–20:00
	// короче/равно порогу: 15 минут отбрасываются, 30 минут остаются.
	want := []Slot{
		{Start: "08:00", End: "08:30"},
		{Start: "19:30", End: "20:00"},
	}
	if !equalSlots(got, want) {
		t.Fatalf("free slots = %+v, want %+v", got, want)
	}
}

func TestFreeSlots_NoBookings(t *testing.T) {
	got := FreeSlots(nil, "08:00", "20:00", 30)
	want := []Slot{{Start: "08:00", End: "20:00"}}
	if !equalSlots(got, want) {
		t.Fatalf("free slots = %+v, want %+v", got, want)
	}
}

func TestFreeSlots_BookingBeforeDayStartClamped(t *testing.T) {
	booked := []Slot{{Start: "07:00", End: "09:00"}}
	got := FreeSlots(booked, "08:00", "20:00", 30)
	want := []Slot{{Start: "09:00", End: "20:00"}}
	if !equalSlots(got, want) {
		t.Fatalf("free slots = %+v, want %+v", got, want)
	}
}

func TestFreeSlots_FullyBookedDay(t *testing.T) {
	booked := []Slot{{Start: "08:00", End: "20:00"}}
	if got := FreeSlots(booked, "08:00", "20:00", 30); len(got) != 0 {
		t.Fatalf("expected no free slots, got %+v", got)
	}
}
