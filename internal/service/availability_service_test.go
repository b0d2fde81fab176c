package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
	"github.com/campushub/reservation-platform/internal/timeslot"
)

func seedActive(t *testing.T, repo *repository.GormReservationRepository, name, date, start, end string) {
	t.Helper()
	err := repo.Create(context.Background(), &model.Reservation{
		OwnerID:           uuid.New(),
		ResourceName:      name,
		Category:          model.ResourceCategoryRoom,
		Date:              date,
		StartTime:         start,
		EndTime:           end,
		Status:            model.ReservationStatusActive,
		PeopleCount:       2,
		ConfirmationToken: uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
}

func TestResolve_BrowsingModeAllAvailable(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormReservationRepository(db)
	seedActive(t, repo, "Seminar Room A-101", "2030-05-10", "09:00", "10:00")

	svc := NewAvailabilityService(catalog.NewStaticSource(catalog.DefaultCatalog()), repo)

	// No temporal window: browsing mode, bookings are irrelevant.
	result, err := svc.Resolve(context.Background(), AvailabilityQuery{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for cat, items := range result {
		for _, ar := range items {
			if !ar.Available {
				t.Fatalf("%s/%s marked unavailable in browsing mode", cat, ar.Resource.Name)
			}
		}
	}
}

func TestResolve_MarksBookedResources(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormReservationRepository(db)
	seedActive(t, repo, "Seminar Room A-101", "2030-05-10", "09:00", "11:00")
	seedActive(t, repo, "Seminar Room A-102", "2030-05-10", "14:00", "15:00")

	svc := NewAvailabilityService(catalog.NewStaticSource(catalog.DefaultCatalog()), repo)

	result, err := svc.Resolve(context.Background(), AvailabilityQuery{
		Date:      "2030-05-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		Category:  model.ResourceCategoryRoom,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	rooms := result[model.ResourceCategoryRoom]
	if len(rooms) == 0 {
		t.Fatalf("no rooms in result")
	}
	byName := map[string]AnnotatedResource{}
	for _, ar := range rooms {
		byName[ar.Resource.Name] = ar
	}

	a101 := byName["Seminar Room A-101"]
	if a101.Available {
		t.Fatalf("A-101 overlaps the window and must be unavailable")
	}
	if a101.Reason != "booked for this time slot" {
		t.Fatalf("reason = %q", a101.Reason)
	}

	// A-102's booking does not intersect 10:00–12:00.
	if !byName["Seminar Room A-102"].Available {
		t.Fatalf("A-102 must stay available")
	}
}

func TestResolve_EmptyCatalogIsEmptyMap(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormReservationRepository(db)
	svc := NewAvailabilityService(catalog.NewStaticSource(nil), repo)

	result, err := svc.Resolve(context.Background(), AvailabilityQuery{Category: model.ResourceCategoryRoom})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty map, got %+v", result)
	}
}

func TestResolve_LedgerFailureDegradesToAvailable(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormReservationRepository(db)
	seedActive(t, repo, "Seminar Room A-101", "2030-05-10", "09:00", "11:00")

	// Simulate the store going away after the catalog data was captured
	// in the static source.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	svc := NewAvailabilityService(catalog.NewStaticSource(catalog.DefaultCatalog()), repo)

	result, err := svc.Resolve(context.Background(), AvailabilityQuery{
		Date:      "2030-05-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		Category:  model.ResourceCategoryRoom,
	})
	if err != nil {
		t.Fatalf("degraded resolve must not fail: %v", err)
	}
	for _, ar := range result[model.ResourceCategoryRoom] {
		if !ar.Available {
			t.Fatalf("degraded mode must mark %s available", ar.Resource.Name)
		}
	}
}

func TestFreeSlots_ExactGaps(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewGormReservationRepository(db)
	seedActive(t, repo, "Seminar Room A-101", "2030-05-10", "09:00", "10:00")
	seedActive(t, repo, "Seminar Room A-101", "2030-05-10", "11:00", "12:00")

	svc := NewAvailabilityService(catalog.NewStaticSource(catalog.DefaultCatalog()), repo)

	slots, err := svc.FreeSlots(context.Background(), model.ResourceCategoryRoom, "Seminar Room A-101", "2030-05-10")
	if err != nil {
		t.Fatalf("free slots: %v", err)
	}
	want := []timeslot.Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "12:00", End: "20:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %+v, want %+v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slots[%d] = %+v, want %+v", i, slots[i], want[i])
		}
	}
}
