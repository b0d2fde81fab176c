package handler

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/service"
	"github.com/campushub/reservation-platform/internal/timeslot"
)

// Представления для ответов API. Модели хранилища наружу не отдаются:
// у них нет json-тегов, и в них есть поля не для клиента (face_template).

type reservationView struct {
	ID                int64      `json:"id"`
	OwnerID           uuid.UUID  `json:"owner_id"`
	ResourceName      string     `json:"resource_name"`
	Category          string     `json:"category"`
	Date              string     `json:"date"`
	StartTime         string     `json:"start_time"`
	EndTime           string     `json:"end_time"`
	Status            string     `json:"status"`
	Purpose           string     `json:"purpose,omitempty"`
	PeopleCount       int        `json:"people_count"`
	CheckInAt         *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt        *time.Time `json:"check_out_at,omitempty"`
	ConfirmationToken string     `json:"confirmation_token"`
}

func toReservationView(r *model.Reservation) reservationView {
	return reservationView{
		ID:                r.ID,
		OwnerID:           r.OwnerID,
		ResourceName:      r.ResourceName,
		Category:          string(r.Category),
		Date:              r.Date,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Status:            string(r.Status),
		Purpose:           r.Purpose,
		PeopleCount:       r.PeopleCount,
		CheckInAt:         r.CheckInAt,
		CheckOutAt:        r.CheckOutAt,
		ConfirmationToken: r.ConfirmationToken,
	}
}

type userView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	CampusID string    `json:"campus_id"`
	IsActive bool      `json:"is_active"`
}

func toUserView(u *model.User) userView {
	return userView{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		CampusID: u.CampusID,
		IsActive: u.IsActive,
	}
}

type resourceView struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CapacityUnits int             `json:"capacity_units"`
	Building      string          `json:"building,omitempty"`
	Amenities     json.RawMessage `json:"amenities,omitempty"`
	Available     bool            `json:"available"`
	Reason        string          `json:"reason,omitempty"`
}

func toResourceView(ar service.AnnotatedResource) resourceView {
	v := resourceView{
		Name:          ar.Resource.Name,
		Category:      string(ar.Resource.Category),
		CapacityUnits: ar.Resource.CapacityUnits,
		Amenities:     json.RawMessage(ar.Resource.Amenities),
		Available:     ar.Available,
		Reason:        ar.Reason,
	}
	if ar.Resource.Building != nil {
		v.Building = ar.Resource.Building.Code
	}
	return v
}

type buildingView struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	TransportNotes string `json:"transport_notes,omitempty"`
	ParkingSpots   int    `json:"parking_spots"`
}

func toBuildingView(b model.Building) buildingView {
	return buildingView{
		Code:           b.Code,
		Name:           b.Name,
		Address:        b.Address,
		TransportNotes: b.TransportNotes,
		ParkingSpots:   b.ParkingSpots,
	}
}

type accessRecordView struct {
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Success      bool      `json:"success"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAccessRecordView(rec model.AccessRecord) accessRecordView {
	return accessRecordView{
		Action:       string(rec.Action),
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		Success:      rec.Success,
		Details:      rec.Details,
		CreatedAt:    rec.CreatedAt,
	}
}

type slotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func toSlotViews(slots []timeslot.Slot) []slotView {
	out := make([]slotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotView{Start: s.Start, End: s.End})
	}
	return out
}

// ownerID достаёт идентификатор владельца из заголовка X-Owner-ID.
// Аутентификация как таковая — внешний слой (гейтвей), здесь только парсинг.
func ownerID(ctx iris.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.GetHeader("X-Owner-ID"))
	if err != nil || id == uuid.Nil {
		badRequest(ctx, "X-Owner-ID header must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
