package dto_test

import (
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeSlot(t *testing.T) {
	day := time.Date(2026, 3, 10, 16, 45, 0, 0, time.UTC)

	t.Run("resolves on the given day", func(t *testing.T) {
		start, end, err := dto.ResolveTimeSlot("09:00-10:00", day)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), end)
	})

	t.Run("malformed labels are rejected", func(t *testing.T) {
		for _, label := range []string{"", "09:00", "9am-10am", "09:00-10:00-11:00", "25:00-26:00"} {
			_, _, err := dto.ResolveTimeSlot(label, day)

			assert.ErrorIs(t, err, dto.ErrMalformedTimeSlot, "label %q", label)
		}
	})
}

func TestSlotLabel(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "09:00-10:00", dto.SlotLabel(start, start.Add(time.Hour)))
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("slot label overrides explicit times on the start date", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VenueID:     "v1",
			Purpose:     model.PurposeEvent,
			EventName:   "Robotics Demo",
			UseTimeSlot: true,
			TimeSlot:    "14:00-15:00",
			StartTime:   "2026-03-12T09:00:00Z",
			EndTime:     "2026-03-12T10:00:00Z",
		}

		booking, err := req.ToModel("alice", "")

		require.NoError(t, err)
		assert.Equal(t, 14, booking.StartTime.Hour())
		assert.Equal(t, 15, booking.EndTime.Hour())
		assert.Equal(t, 12, booking.StartTime.Day())
		assert.Equal(t, "14:00-15:00", booking.TimeSlot)
		assert.Equal(t, model.StatusPending, booking.Status)
		assert.Equal(t, "alice", booking.CreatedBy)
	})

	t.Run("study bookings default the event name", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VenueID:   "v1",
			Purpose:   model.PurposeStudy,
			StartTime: "2026-03-12T09:00:00Z",
			EndTime:   "2026-03-12T10:00:00Z",
		}

		booking, err := req.ToModel("alice", "")

		require.NoError(t, err)
		assert.Equal(t, model.DefaultStudyEventName, booking.EventName)
	})

	t.Run("a provided study event name is kept", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VenueID:   "v1",
			Purpose:   model.PurposeStudy,
			EventName: "Thesis Group",
			StartTime: "2026-03-12T09:00:00Z",
			EndTime:   "2026-03-12T10:00:00Z",
		}

		booking, err := req.ToModel("alice", "")

		require.NoError(t, err)
		assert.Equal(t, "Thesis Group", booking.EventName)
	})

	t.Run("malformed times are structural errors", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VenueID:   "v1",
			Purpose:   model.PurposeEvent,
			StartTime: "12/03/2026 09:00",
		}

		_, err := req.ToModel("alice", "")

		assert.ErrorIs(t, err, dto.ErrMalformedTime)
	})

	t.Run("malformed slot label is a structural error", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			VenueID:     "v1",
			Purpose:     model.PurposeEvent,
			UseTimeSlot: true,
			TimeSlot:    "morning",
		}

		_, err := req.ToModel("alice", "")

		assert.ErrorIs(t, err, dto.ErrMalformedTimeSlot)
	})
}

func TestUpdateBookingRequest_ApplyTo(t *testing.T) {
	current := model.Booking{
		ID:        "b1",
		VenueID:   "v1",
		Purpose:   model.PurposeEvent,
		EventName: "Robotics Demo",
		TimeSlot:  "09:00-10:00",
		StartTime: time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
		Status:    model.StatusApproved,
	}

	t.Run("untouched window is preserved", func(t *testing.T) {
		req := dto.UpdateBookingRequest{Description: "now with demos"}

		candidate, err := req.ApplyTo(current)

		require.NoError(t, err)
		assert.Equal(t, current.StartTime, candidate.StartTime)
		assert.Equal(t, current.EndTime, candidate.EndTime)
		assert.Equal(t, "now with demos", candidate.Description)
	})

	t.Run("slot label moves the window on the booking's date", func(t *testing.T) {
		req := dto.UpdateBookingRequest{UseTimeSlot: true, TimeSlot: "16:00-17:00"}

		candidate, err := req.ApplyTo(current)

		require.NoError(t, err)
		assert.Equal(t, 16, candidate.StartTime.Hour())
		assert.Equal(t, 12, candidate.StartTime.Day())
		assert.Equal(t, "16:00-17:00", candidate.TimeSlot)
	})

	t.Run("new start time carries its date into slot resolution", func(t *testing.T) {
		req := dto.UpdateBookingRequest{
			UseTimeSlot: true,
			TimeSlot:    "16:00-17:00",
			StartTime:   "2026-03-20T09:00:00Z",
		}

		candidate, err := req.ApplyTo(current)

		require.NoError(t, err)
		assert.Equal(t, 20, candidate.StartTime.Day())
		assert.Equal(t, 16, candidate.StartTime.Hour())
	})

	t.Run("switching to study fills the default event name", func(t *testing.T) {
		blank := current
		blank.EventName = ""

		req := dto.UpdateBookingRequest{Purpose: model.PurposeStudy}

		candidate, err := req.ApplyTo(blank)

		require.NoError(t, err)
		assert.Equal(t, model.DefaultStudyEventName, candidate.EventName)
	})
}
