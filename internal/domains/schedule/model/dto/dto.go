package dto

import (
	"campusbook/internal/domains/schedule/model"
	gDto "campusbook/shared/dto"
)

type UpdateScheduleRequest struct {
	OpenHour    *int `db:"open_hour"    json:"open_hour"    validate:"omitempty,min=0,max=23"`
	CloseHour   *int `db:"close_hour"   json:"close_hour"   validate:"omitempty,min=1,max=23"`
	SlotMinutes *int `db:"slot_minutes" json:"slot_minutes" validate:"omitempty,min=1"`
	AdvanceDays *int `db:"advance_days" json:"advance_days" validate:"omitempty,min=1"`
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	OpenHour    int    `json:"open_hour"`
	CloseHour   int    `json:"close_hour"`
	SlotMinutes int    `json:"slot_minutes"`
	AdvanceDays int    `json:"advance_days"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.SchedulePolicy) {
	r.ID = model.ID
	r.OpenHour = model.OpenHour
	r.CloseHour = model.CloseHour
	r.SlotMinutes = model.SlotMinutes
	r.AdvanceDays = model.AdvanceDays
	r.Metadata.FromModel(model.Metadata)
}

type SlotsResponse struct {
	Slots          []model.TimeSlot `json:"slots"`
	OperatingHours OperatingHours   `json:"operating_hours"`
}

type OperatingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}
