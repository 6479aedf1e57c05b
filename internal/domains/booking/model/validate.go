package model

import (
	"fmt"
	scheduleModel "campusbook/internal/domains/schedule/model"
	"strings"
	"time"
)

// FieldError is a business-rule failure tied to a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// JoinFieldErrors flattens validation failures into one readable message.
func JoinFieldErrors(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Message
	}

	return strings.Join(parts, "; ")
}

// OnlyConflict reports whether the clash check is the sole failure, which
// callers surface as a conflict rather than a bad request.
func OnlyConflict(errs []FieldError) bool {
	if len(errs) == 0 {
		return false
	}

	for _, e := range errs {
		if e.Field != FieldTimeSlot {
			return false
		}
	}

	return true
}

// ValidateWindow runs every pre-persistence check for a booking window against
// the venue's other bookings and the operating-hours policy. Missing times
// short-circuit; all other failures are collected in a fixed order so callers
// can report them together. excludeID exempts the booking's own row on edits.
func ValidateWindow(b Booking, existing []Booking, policy scheduleModel.SchedulePolicy, now time.Time, excludeID string) []FieldError {
	if b.StartTime.IsZero() || b.EndTime.IsZero() {
		return []FieldError{{Field: FieldStartTime, Message: "start and end times are required"}}
	}

	errs := []FieldError{}

	if !b.StartTime.Before(b.EndTime) {
		errs = append(errs, FieldError{Field: FieldEndTime, Message: "end time must be after start time"})
	}

	if b.StartTime.Before(now) {
		errs = append(errs, FieldError{Field: FieldStartTime, Message: "start time cannot be in the past"})
	}

	if policy.AdvanceDays > 0 && b.StartTime.After(now.AddDate(0, 0, policy.AdvanceDays)) {
		errs = append(errs, FieldError{
			Field:   FieldStartTime,
			Message: fmt.Sprintf("bookings can be made at most %d days in advance", policy.AdvanceDays),
		})
	}

	if !policy.WithinOperatingHours(b.StartTime, b.EndTime) {
		errs = append(errs, FieldError{
			Field:   FieldStartTime,
			Message: fmt.Sprintf("bookings must fall within operating hours (%s-%s)", policy.OpenLabel(), policy.CloseLabel()),
		})
	}

	if conflicts := FindConflicts(b.StartTime, b.EndTime, existing, excludeID); len(conflicts) > 0 {
		errs = append(errs, FieldError{
			Field:   FieldTimeSlot,
			Message: fmt.Sprintf("the venue is already booked for %q during this time", conflicts[0].EventName),
		})
	}

	return errs
}
