package model_test

import (
	"campusbook/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func booking(id, eventName, status string, start, end time.Time) model.Booking {
	return model.Booking{
		ID:        id,
		EventName: eventName,
		Status:    status,
		StartTime: start,
		EndTime:   end,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical windows", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"contained window", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"back to back, first then second", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"back to back, second then first", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint windows", at(8, 0), at(9, 0), at(14, 0), at(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, model.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap must be symmetric")
		})
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []model.Booking{
		booking("b1", "Robotics Club", model.StatusApproved, at(10, 0), at(11, 0)),
		booking("b2", "Chess Night", model.StatusPending, at(14, 0), at(15, 0)),
		booking("b3", "Cancelled Mixer", model.StatusRejected, at(10, 0), at(11, 0)),
	}

	t.Run("pending and approved both block", func(t *testing.T) {
		conflicts := model.FindConflicts(at(10, 30), at(14, 30), existing, "")

		assert.Len(t, conflicts, 2)
		assert.Equal(t, "b1", conflicts[0].ID)
		assert.Equal(t, "b2", conflicts[1].ID)
	})

	t.Run("rejected bookings never block", func(t *testing.T) {
		conflicts := model.FindConflicts(at(10, 0), at(11, 0), existing[2:], "")

		assert.Empty(t, conflicts)
	})

	t.Run("excluded record does not block itself", func(t *testing.T) {
		conflicts := model.FindConflicts(at(10, 0), at(11, 0), existing, "b1")

		assert.Empty(t, conflicts)
	})

	t.Run("back to back windows are free", func(t *testing.T) {
		conflicts := model.FindConflicts(at(11, 0), at(12, 0), existing, "")

		assert.Empty(t, conflicts)
	})

	t.Run("results are sorted by start time", func(t *testing.T) {
		unordered := []model.Booking{
			booking("late", "Late", model.StatusApproved, at(16, 0), at(17, 0)),
			booking("early", "Early", model.StatusApproved, at(9, 0), at(10, 0)),
		}

		conflicts := model.FindConflicts(at(8, 0), at(18, 0), unordered, "")

		assert.Len(t, conflicts, 2)
		assert.Equal(t, "early", conflicts[0].ID)
		assert.Equal(t, "late", conflicts[1].ID)
	})
}
