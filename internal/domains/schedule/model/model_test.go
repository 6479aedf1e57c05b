package model_test

import (
	"campusbook/internal/domains/schedule/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaySlots(t *testing.T) {
	tests := []struct {
		name      string
		policy    model.SchedulePolicy
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "hourly slots across a full day",
			policy:    model.SchedulePolicy{OpenHour: 8, CloseHour: 20, SlotMinutes: 60},
			wantCount: 12,
			wantFirst: "08:00-09:00",
			wantLast:  "19:00-20:00",
		},
		{
			name:      "trailing partial slot is dropped",
			policy:    model.SchedulePolicy{OpenHour: 8, CloseHour: 9, SlotMinutes: 40},
			wantCount: 1,
			wantFirst: "08:00-08:40",
			wantLast:  "08:00-08:40",
		},
		{
			name:      "slot longer than the window yields nothing",
			policy:    model.SchedulePolicy{OpenHour: 8, CloseHour: 9, SlotMinutes: 90},
			wantCount: 0,
		},
		{
			name:      "ninety minute slots leave a remainder",
			policy:    model.SchedulePolicy{OpenHour: 9, CloseHour: 17, SlotMinutes: 90},
			wantCount: 5,
			wantFirst: "09:00-10:30",
			wantLast:  "15:00-16:30",
		},
		{
			name:      "zero slot minutes",
			policy:    model.SchedulePolicy{OpenHour: 8, CloseHour: 20, SlotMinutes: 0},
			wantCount: 0,
		},
		{
			name:      "open at or after close",
			policy:    model.SchedulePolicy{OpenHour: 20, CloseHour: 8, SlotMinutes: 60},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := tt.policy.DaySlots()

			assert.Len(t, slots, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, slots[0].Label)
				assert.Equal(t, tt.wantLast, slots[len(slots)-1].Label)
			}
		})
	}
}

func TestDaySlots_LabelsMatchBounds(t *testing.T) {
	policy := model.SchedulePolicy{OpenHour: 8, CloseHour: 12, SlotMinutes: 60}

	for _, slot := range policy.DaySlots() {
		assert.Equal(t, slot.Start+"-"+slot.End, slot.Label)
	}
}

func TestWithinOperatingHours(t *testing.T) {
	policy := model.SchedulePolicy{OpenHour: 8, CloseHour: 22, SlotMinutes: 60}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside the window", at(10, 0), at(12, 0), true},
		{"starts at opening", at(8, 0), at(9, 0), true},
		{"ends exactly at closing", at(21, 0), at(22, 0), true},
		{"starts before opening", at(7, 59), at(9, 0), false},
		{"ends past closing", at(21, 0), at(22, 1), false},
		{"ends seconds past closing", at(21, 0), at(22, 0).Add(59 * time.Second), false},
		{"starts seconds before opening", at(8, 0).Add(-time.Second), at(9, 0), false},
		{"spans to the next day", at(21, 0), at(21, 0).Add(25 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.WithinOperatingHours(tt.start, tt.end))
		})
	}
}

func TestOperatingHourLabels(t *testing.T) {
	policy := model.SchedulePolicy{OpenHour: 8, CloseHour: 22}

	assert.Equal(t, "08:00", policy.OpenLabel())
	assert.Equal(t, "22:00", policy.CloseLabel())
}
