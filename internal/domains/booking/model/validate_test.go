package model_test

import (
	"campusbook/internal/domains/booking/model"
	scheduleModel "campusbook/internal/domains/schedule/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindow(t *testing.T) {
	policy := scheduleModel.SchedulePolicy{OpenHour: 8, CloseHour: 22, SlotMinutes: 60, AdvanceDays: 30}
	now := at(9, 0)

	candidate := func(start, end time.Time) model.Booking {
		return model.Booking{ID: "new", VenueID: "v1", StartTime: start, EndTime: end}
	}

	t.Run("missing times short-circuit", func(t *testing.T) {
		errs := model.ValidateWindow(model.Booking{}, nil, policy, now, "")

		assert.Len(t, errs, 1)
		assert.Equal(t, model.FieldStartTime, errs[0].Field)
	})

	t.Run("valid future window passes", func(t *testing.T) {
		errs := model.ValidateWindow(candidate(at(10, 0), at(11, 0)), nil, policy, now, "")

		assert.Empty(t, errs)
	})

	t.Run("inverted window", func(t *testing.T) {
		errs := model.ValidateWindow(candidate(at(11, 0), at(10, 0)), nil, policy, now, "")

		assert.NotEmpty(t, errs)
		assert.Equal(t, model.FieldEndTime, errs[0].Field)
	})

	t.Run("past start time", func(t *testing.T) {
		errs := model.ValidateWindow(candidate(at(8, 0), at(9, 0)), nil, policy, now, "")

		assert.NotEmpty(t, errs)
		assert.Equal(t, "start time cannot be in the past", errs[0].Message)
	})

	t.Run("beyond the advance horizon", func(t *testing.T) {
		start := now.AddDate(0, 0, 31)
		errs := model.ValidateWindow(candidate(start.Add(time.Hour), start.Add(2*time.Hour)), nil, policy, now, "")

		assert.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "30 days in advance")
	})

	t.Run("outside operating hours", func(t *testing.T) {
		errs := model.ValidateWindow(candidate(at(22, 0), at(23, 0)), nil, policy, now, "")

		assert.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "operating hours")
	})

	t.Run("clash names the first conflicting event", func(t *testing.T) {
		existing := []model.Booking{
			booking("b1", "Robotics Club", model.StatusApproved, at(10, 0), at(12, 0)),
		}

		errs := model.ValidateWindow(candidate(at(11, 0), at(12, 0)), existing, policy, now, "")

		assert.Len(t, errs, 1)
		assert.Equal(t, model.FieldTimeSlot, errs[0].Field)
		assert.Contains(t, errs[0].Message, "Robotics Club")
		assert.True(t, model.OnlyConflict(errs))
	})

	t.Run("edits skip the booking's own row", func(t *testing.T) {
		existing := []model.Booking{
			booking("b1", "Robotics Club", model.StatusApproved, at(10, 0), at(12, 0)),
		}

		errs := model.ValidateWindow(candidate(at(10, 0), at(12, 0)), existing, policy, now, "b1")

		assert.Empty(t, errs)
	})

	t.Run("failures are collected in order", func(t *testing.T) {
		existing := []model.Booking{
			booking("b1", "Robotics Club", model.StatusApproved, at(6, 0), at(7, 0)),
		}

		// Past start, outside hours, and clashing all at once.
		errs := model.ValidateWindow(candidate(at(6, 0), at(7, 0)), existing, policy, now, "")

		assert.Len(t, errs, 3)
		assert.Equal(t, model.FieldStartTime, errs[0].Field)
		assert.Equal(t, model.FieldStartTime, errs[1].Field)
		assert.Equal(t, model.FieldTimeSlot, errs[2].Field)
		assert.False(t, model.OnlyConflict(errs))
	})
}

func TestJoinFieldErrors(t *testing.T) {
	errs := []model.FieldError{
		{Field: "start_time", Message: "start time cannot be in the past"},
		{Field: "time_slot", Message: "the venue is already booked"},
	}

	assert.Equal(t, "start time cannot be in the past; the venue is already booked", model.JoinFieldErrors(errs))
}
