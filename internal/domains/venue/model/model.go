package model

import "campusbook/shared/model"

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID        = "id"
	FieldName      = "name"
	FieldLocation  = "location"
	FieldCapacity  = "capacity"
	FieldEquipment = "equipment"
	FieldActive    = "active"
)

// Capacity class boundaries used by the list filter.
const (
	CapacityClassSmall  = "small"
	CapacityClassMedium = "medium"
	CapacityClassLarge  = "large"

	CapacitySmallMax = 19
	CapacityMediumLo = 20
	CapacityMediumHi = 50
	CapacityLargeMin = 51
)

type Venue struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Location  string `db:"location"`
	Capacity  int    `db:"capacity"`
	Equipment string `db:"equipment"`
	Active    bool   `db:"active"`
	model.Metadata
}
