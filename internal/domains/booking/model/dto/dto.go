package dto

import (
	"errors"
	"campusbook/internal/domains/booking/model"
	scheduleModel "campusbook/internal/domains/schedule/model"
	scheduleDto "campusbook/internal/domains/schedule/model/dto"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

var (
	ErrMalformedTimeSlot = errors.New("time slot must use the HH:MM-HH:MM format")
	ErrMalformedTime     = errors.New("start and end times must use the RFC 3339 format")
	ErrMalformedDate     = errors.New("date must use the YYYY-MM-DD format")
)

// ResolveTimeSlot turns a "HH:MM-HH:MM" label into concrete bounds on the
// given day, keeping that day's location.
func ResolveTimeSlot(label string, day time.Time) (start, end time.Time, err error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return start, end, ErrMalformedTimeSlot
	}

	from, err := time.Parse(clockLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return start, end, ErrMalformedTimeSlot
	}

	to, err := time.Parse(clockLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return start, end, ErrMalformedTimeSlot
	}

	year, month, dayOfMonth := day.Date()
	start = time.Date(year, month, dayOfMonth, from.Hour(), from.Minute(), 0, 0, day.Location())
	end = time.Date(year, month, dayOfMonth, to.Hour(), to.Minute(), 0, 0, day.Location())

	return start, end, nil
}

// SlotLabel derives the canonical "HH:MM-HH:MM" label from resolved bounds.
func SlotLabel(start, end time.Time) string {
	return start.Format(clockLayout) + "-" + end.Format(clockLayout)
}

type CreateBookingRequest struct {
	VenueID        string `json:"venue_id"        validate:"required"`
	Purpose        string `json:"purpose"         validate:"required,oneof=STUDY EVENT"`
	EventName      string `json:"event_name"      validate:"omitempty,max=200"`
	Description    string `json:"description"     validate:"omitempty,max=1000"`
	AddonEquipment string `json:"addon_equipment" validate:"omitempty,max=255"`
	Document       string `json:"document"        validate:"omitempty,mimetypes=application/pdf image/png image/jpeg,maxfilesize=5"`
	UseTimeSlot    bool   `json:"use_time_slot"`
	TimeSlot       string `json:"time_slot"       validate:"omitempty"`
	StartTime      string `json:"start_time"      validate:"omitempty"`
	EndTime        string `json:"end_time"        validate:"omitempty"`
}

// ToModel resolves the requested window and builds a PENDING booking. When
// use_time_slot is set, the slot label overrides start/end on the date of the
// provided start time (or today when none was given).
func (c *CreateBookingRequest) ToModel(user, documentURL string) (model.Booking, error) {
	start, end, err := resolveWindow(c.UseTimeSlot, c.TimeSlot, c.StartTime, c.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	eventName := c.EventName
	if c.Purpose == model.PurposeStudy && eventName == constant.Empty {
		eventName = model.DefaultStudyEventName
	}

	timeSlot := constant.Empty
	if !start.IsZero() && !end.IsZero() {
		timeSlot = SlotLabel(start, end)
	}

	now := timezone.Now()

	return model.Booking{
		ID:             uuid.NewString(),
		VenueID:        c.VenueID,
		Purpose:        c.Purpose,
		EventName:      eventName,
		Description:    c.Description,
		AddonEquipment: c.AddonEquipment,
		DocumentURL:    documentURL,
		TimeSlot:       timeSlot,
		StartTime:      start,
		EndTime:        end,
		Status:         model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	Purpose        string `json:"purpose"         validate:"omitempty,oneof=STUDY EVENT"`
	EventName      string `json:"event_name"      validate:"omitempty,max=200"`
	Description    string `json:"description"     validate:"omitempty,max=1000"`
	AddonEquipment string `json:"addon_equipment" validate:"omitempty,max=255"`
	Document       string `json:"document"        validate:"omitempty,mimetypes=application/pdf image/png image/jpeg,maxfilesize=5"`
	UseTimeSlot    bool   `json:"use_time_slot"`
	TimeSlot       string `json:"time_slot"       validate:"omitempty"`
	StartTime      string `json:"start_time"      validate:"omitempty"`
	EndTime        string `json:"end_time"        validate:"omitempty"`
}

// ApplyTo merges the edit into the current booking and returns the candidate.
// The window falls back to the current one when the request leaves it alone;
// a slot label resolves against the date of the new start time if one was
// provided, otherwise the booking's existing date.
func (u *UpdateBookingRequest) ApplyTo(current model.Booking) (model.Booking, error) {
	candidate := current

	if u.StartTime != constant.Empty {
		start, err := time.Parse(constant.DateFormat, u.StartTime)
		if err != nil {
			return model.Booking{}, ErrMalformedTime
		}

		candidate.StartTime = start
	}

	if u.EndTime != constant.Empty {
		end, err := time.Parse(constant.DateFormat, u.EndTime)
		if err != nil {
			return model.Booking{}, ErrMalformedTime
		}

		candidate.EndTime = end
	}

	if u.UseTimeSlot {
		day := candidate.StartTime
		if day.IsZero() {
			day = timezone.Now()
		}

		start, end, err := ResolveTimeSlot(u.TimeSlot, day)
		if err != nil {
			return model.Booking{}, err
		}

		candidate.StartTime = start
		candidate.EndTime = end
	}

	if u.Purpose != constant.Empty {
		candidate.Purpose = u.Purpose
	}

	if u.EventName != constant.Empty {
		candidate.EventName = u.EventName
	}

	if u.Description != constant.Empty {
		candidate.Description = u.Description
	}

	if u.AddonEquipment != constant.Empty {
		candidate.AddonEquipment = u.AddonEquipment
	}

	if candidate.Purpose == model.PurposeStudy && candidate.EventName == constant.Empty {
		candidate.EventName = model.DefaultStudyEventName
	}

	if !candidate.StartTime.IsZero() && !candidate.EndTime.IsZero() {
		candidate.TimeSlot = SlotLabel(candidate.StartTime, candidate.EndTime)
	}

	return candidate, nil
}

func resolveWindow(useTimeSlot bool, timeSlot, startTime, endTime string) (start, end time.Time, err error) {
	if startTime != constant.Empty {
		start, err = time.Parse(constant.DateFormat, startTime)
		if err != nil {
			return start, end, ErrMalformedTime
		}
	}

	if endTime != constant.Empty {
		end, err = time.Parse(constant.DateFormat, endTime)
		if err != nil {
			return start, end, ErrMalformedTime
		}
	}

	if useTimeSlot {
		day := start
		if day.IsZero() {
			day = timezone.Now()
		}

		return ResolveTimeSlot(timeSlot, day)
	}

	return start, end, nil
}

type DecideBookingRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	VenueID        string `json:"venue_id"`
	Purpose        string `json:"purpose"`
	EventName      string `json:"event_name"`
	Description    string `json:"description,omitempty"`
	AddonEquipment string `json:"addon_equipment,omitempty"`
	DocumentURL    string `json:"document_url,omitempty"`
	TimeSlot       string `json:"time_slot"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	ApprovedBy     string `json:"approved_by,omitempty"`
	ApprovedAt     string `json:"approved_at,omitempty"`
	CredentialURL  string `json:"credential_url,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.VenueID = model.VenueID
	r.Purpose = model.Purpose
	r.EventName = model.EventName
	r.Description = model.Description
	r.AddonEquipment = model.AddonEquipment
	r.DocumentURL = model.DocumentURL
	r.TimeSlot = model.TimeSlot
	r.StartTime = model.StartTime.Format(constant.DateFormat)
	r.EndTime = model.EndTime.Format(constant.DateFormat)
	r.Status = model.Status
	r.CredentialURL = model.CredentialURL

	if model.ApprovedBy != nil {
		r.ApprovedBy = *model.ApprovedBy
	}

	if model.ApprovedAt != nil {
		r.ApprovedAt = model.ApprovedAt.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookedSlot is an occupied interval in the availability view, tagged with the
// event holding it.
type BookedSlot struct {
	scheduleModel.TimeSlot
	EventName string `json:"event_name"`
}

type AvailabilityResponse struct {
	VenueID        string                     `json:"venue_id"`
	Date           string                     `json:"date"`
	AvailableSlots []scheduleModel.TimeSlot   `json:"available_slots"`
	BookedSlots    []BookedSlot               `json:"booked_slots"`
	OperatingHours scheduleDto.OperatingHours `json:"operating_hours"`
}

type CheckAvailabilityResponse struct {
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// ParseDate parses the availability query's YYYY-MM-DD parameter in the
// service timezone.
func ParseDate(value string) (time.Time, error) {
	day, err := timezone.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}

	return day, nil
}
