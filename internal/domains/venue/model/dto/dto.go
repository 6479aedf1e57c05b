package dto

import (
	"campusbook/internal/domains/venue/model"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Location  string `json:"location"  validate:"omitempty,max=100"`
	Capacity  int    `json:"capacity"  validate:"omitempty,min=0"`
	Equipment string `json:"equipment" validate:"omitempty,max=255"`
	Active    *bool  `json:"active"    validate:"omitempty"`
}

func (c *CreateVenueRequest) ToModel(user string) model.Venue {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Venue{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Location:  c.Location,
		Capacity:  c.Capacity,
		Equipment: c.Equipment,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVenueRequest struct {
	Name      string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Location  string `db:"location"  json:"location"  validate:"omitempty,max=100"`
	Capacity  *int   `db:"capacity"  json:"capacity"  validate:"omitempty,min=0"`
	Equipment string `db:"equipment" json:"equipment" validate:"omitempty,max=255"`
	Active    *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	Equipment string `json:"equipment"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(model model.Venue) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Equipment = model.Equipment
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}
