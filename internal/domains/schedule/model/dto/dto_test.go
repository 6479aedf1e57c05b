package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusbook/internal/domains/schedule/model"
	"campusbook/internal/domains/schedule/model/dto"
	"campusbook/shared/validator"
)

func intPtr(v int) *int { return &v }

func TestUpdateScheduleRequest_HourBounds(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UpdateScheduleRequest
		wantErr bool
	}{
		{"close at end of day", dto.UpdateScheduleRequest{CloseHour: intPtr(23)}, false},
		{"close past end of day", dto.UpdateScheduleRequest{CloseHour: intPtr(24)}, true},
		{"open at midnight", dto.UpdateScheduleRequest{OpenHour: intPtr(0)}, false},
		{"open past end of day", dto.UpdateScheduleRequest{OpenHour: intPtr(24)}, true},
		{"negative open hour", dto.UpdateScheduleRequest{OpenHour: intPtr(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleResponse_FromModel(t *testing.T) {
	policy := model.SchedulePolicy{
		ID:          "policy-1",
		OpenHour:    9,
		CloseHour:   21,
		SlotMinutes: 30,
		AdvanceDays: 14,
	}

	var res dto.ScheduleResponse
	res.FromModel(policy)

	assert.Equal(t, policy.ID, res.ID)
	assert.Equal(t, policy.OpenHour, res.OpenHour)
	assert.Equal(t, policy.CloseHour, res.CloseHour)
	assert.Equal(t, policy.SlotMinutes, res.SlotMinutes)
	assert.Equal(t, policy.AdvanceDays, res.AdvanceDays)
}
