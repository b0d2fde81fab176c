package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
)

type bookingFixture struct {
	db      *gorm.DB
	svc     *BookingService
	ownerID uuid.UUID
}

func newBookingFixture(t *testing.T, c Clock) *bookingFixture {
	t.Helper()
	db := openTestDB(t)

	owner := model.User{ID: uuid.New(), Email: "student@campus.edu", FullName: "Test Student", IsActive: true}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	svc := NewBookingService(
		repository.NewGormReservationRepository(db),
		catalog.NewStaticSource(catalog.DefaultCatalog()),
		repository.NewGormUserRepository(db),
		repository.NewGormAccessLogRepository(db),
		c,
	)
	return &bookingFixture{db: db, svc: svc, ownerID: owner.ID}
}

func TestReserve_Success(t *testing.T) {
	f := newBookingFixture(t, clockAt(t, "2030-05-01", "09:00"))

	req := validRequest()
	req.OwnerID = f.ownerID

	res, err := f.svc.Reserve(context.Background(), req)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if res.ID == 0 {
		t.Fatalf("reservation id not assigned")
	}
	if res.Status != model.ReservationStatusActive {
		t.Fatalf("status = %s, want active", res.Status)
	}
	if res.ConfirmationToken == "" {
		t.Fatalf("confirmation token is empty")
	}

	var count int64
	if err := f.db.Model(&model.Reservation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("persisted reservations = %d, want 1", count)
	}

	// Audit record is written on success.
	var audits int64
	if err := f.db.Model(&model.AccessRecord{}).Where("action = ?", model.AccessActionReservationCreated).Count(&audits).Error; err != nil {
		t.Fatalf("count audits: %v", err)
	}
	if audits != 1 {
		t.Fatalf("audit records = %d, want 1", audits)
	}
}

func TestReserve_ConflictRejected(t *testing.T) {
	f := newBookingFixture(t, clockAt(t, "2030-05-01", "09:00"))

	first := validRequest()
	first.OwnerID = f.ownerID
	if _, err := f.svc.Reserve(context.Background(), first); err != nil {
		t.Fatalf("first reserve: %v", err)
	}

	second := validRequest()
	second.OwnerID = f.ownerID
	second.StartTime = "10:30"
	second.EndTime = "11:30"
	if _, err := f.svc.Reserve(context.Background(), second); !errors.Is(err, repository.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Touching window right after the first booking goes through.
	third := validRequest()
	third.OwnerID = f.ownerID
	third.StartTime = "11:00"
	third.EndTime = "12:00"
	if _, err := f.svc.Reserve(context.Background(), third); err != nil {
		t.Fatalf("touching window rejected: %v", err)
	}
}

func TestReserve_UnknownResource(t *testing.T) {
	f := newBookingFixture(t, clockAt(t, "2030-05-01", "09:00"))

	req := validRequest()
	req.OwnerID = f.ownerID
	req.ResourceName = "Nonexistent Hall"
	if _, err := f.svc.Reserve(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReserve_DeactivatedOwnerRejected(t *testing.T) {
	f := newBookingFixture(t, clockAt(t, "2030-05-01", "09:00"))

	if err := f.db.Model(&model.User{}).Where("id = ?", f.ownerID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate owner: %v", err)
	}

	req := validRequest()
	req.OwnerID = f.ownerID
	if _, err := f.svc.Reserve(context.Background(), req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReserve_ResourceIDFromPersistedCatalog(t *testing.T) {
	db := openTestDB(t)

	owner := model.User{ID: uuid.New(), Email: "student@campus.edu", IsActive: true}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	resource := model.Resource{
		ID:            uuid.New(),
		Name:          "Seminar Room A-101",
		Category:      model.ResourceCategoryRoom,
		CapacityUnits: 12,
		IsAvailable:   true,
	}
	if err := db.Create(&resource).Error; err != nil {
		t.Fatalf("seed resource: %v", err)
	}

	svc := NewBookingService(
		repository.NewGormReservationRepository(db),
		catalog.NewGormSource(db),
		repository.NewGormUserRepository(db),
		nil,
		clockAt(t, "2030-05-01", "09:00"),
	)

	req := validRequest()
	req.OwnerID = owner.ID

	res, err := svc.Reserve(context.Background(), req)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	// The persisted catalog answered, so the stable id is recorded.
	if res.ResourceID == nil || *res.ResourceID != resource.ID {
		t.Fatalf("resource id = %v, want %s", res.ResourceID, resource.ID)
	}
}

func TestCancel_ThroughService(t *testing.T) {
	f := newBookingFixture(t, clockAt(t, "2030-05-01", "09:00"))

	req := validRequest()
	req.OwnerID = f.ownerID
	res, err := f.svc.Reserve(context.Background(), req)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := f.svc.Cancel(context.Background(), res.ID, f.ownerID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), res.ID, f.ownerID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double cancel, got %v", err)
	}
}
