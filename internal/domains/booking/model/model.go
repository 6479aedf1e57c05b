package model

import (
	"campusbook/shared/model"
	"time"
)

const (
	TableName  = "venue_bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldVenueID        = "venue_id"
	FieldPurpose        = "purpose"
	FieldEventName      = "event_name"
	FieldDescription    = "description"
	FieldAddonEquipment = "addon_equipment"
	FieldDocumentURL    = "document_url"
	FieldTimeSlot       = "time_slot"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldStatus         = "status"
	FieldApprovedBy     = "approved_by"
	FieldApprovedAt     = "approved_at"
	FieldCredentialURL  = "credential_url"
	FieldCreatedBy      = "created_by"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"

	PurposeStudy = "STUDY"
	PurposeEvent = "EVENT"

	// DefaultStudyEventName fills the event name for study bookings that
	// leave it blank.
	DefaultStudyEventName = "Study Session"
)

// Blocking statuses occupy the venue: a PENDING request reserves its window
// until an administrator rules on it.
func IsBlockingStatus(status string) bool {
	return status == StatusPending || status == StatusApproved
}

type Booking struct {
	ID             string     `db:"id"`
	VenueID        string     `db:"venue_id"`
	Purpose        string     `db:"purpose"`
	EventName      string     `db:"event_name"`
	Description    string     `db:"description"`
	AddonEquipment string     `db:"addon_equipment"`
	DocumentURL    string     `db:"document_url"`
	TimeSlot       string     `db:"time_slot"`
	StartTime      time.Time  `db:"start_time"`
	EndTime        time.Time  `db:"end_time"`
	Status         string     `db:"status"`
	ApprovedBy     *string    `db:"approved_by"`
	ApprovedAt     *time.Time `db:"approved_at"`
	CredentialURL  string     `db:"credential_url"`
	model.Metadata
}
