package model

import (
	"fmt"
	"campusbook/shared/model"
	"time"
)

const (
	TableName  = "schedule_policies"
	EntityName = "schedule_policy"

	FieldID          = "id"
	FieldOpenHour    = "open_hour"
	FieldCloseHour   = "close_hour"
	FieldSlotMinutes = "slot_minutes"
	FieldAdvanceDays = "advance_days"
)

const minutesPerHour = 60

// SchedulePolicy is the single persisted row describing venue operating hours
// and slot granularity. Slots are always derived from it, never stored.
type SchedulePolicy struct {
	ID          string `db:"id"`
	OpenHour    int    `db:"open_hour"`
	CloseHour   int    `db:"close_hour"`
	SlotMinutes int    `db:"slot_minutes"`
	AdvanceDays int    `db:"advance_days"`
	model.Metadata
}

// TimeSlot is one bookable interval within a day, in wall-clock terms.
type TimeSlot struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySlots walks the operating window in SlotMinutes increments. A trailing
// partial slot that would cross closing time is dropped; a slot size larger
// than the whole window yields no slots.
func (p SchedulePolicy) DaySlots() []TimeSlot {
	if p.SlotMinutes <= 0 || p.OpenHour >= p.CloseHour {
		return []TimeSlot{}
	}

	openMinute := p.OpenHour * minutesPerHour
	closeMinute := p.CloseHour * minutesPerHour

	slots := []TimeSlot{}
	for start := openMinute; start+p.SlotMinutes <= closeMinute; start += p.SlotMinutes {
		end := start + p.SlotMinutes

		slots = append(slots, TimeSlot{
			Label: fmt.Sprintf("%s-%s", clockLabel(start), clockLabel(end)),
			Start: clockLabel(start),
			End:   clockLabel(end),
		})
	}

	return slots
}

// WithinOperatingHours reports whether the window falls inside a single day's
// operating hours. The end bound is inclusive of closing time itself, and the
// comparison is exact: an end even one second past closing is outside.
func (p SchedulePolicy) WithinOperatingHours(start, end time.Time) bool {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	if sy != ey || sm != em || sd != ed {
		return false
	}

	openAt := time.Date(sy, sm, sd, p.OpenHour, 0, 0, 0, start.Location())
	closeAt := time.Date(sy, sm, sd, p.CloseHour, 0, 0, 0, start.Location())

	return !start.Before(openAt) && !end.After(closeAt)
}

// OpenLabel returns the opening time as "HH:MM".
func (p SchedulePolicy) OpenLabel() string {
	return clockLabel(p.OpenHour * minutesPerHour)
}

// CloseLabel returns the closing time as "HH:MM".
func (p SchedulePolicy) CloseLabel() string {
	return clockLabel(p.CloseHour * minutesPerHour)
}

func clockLabel(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/minutesPerHour, minuteOfDay%minutesPerHour)
}
