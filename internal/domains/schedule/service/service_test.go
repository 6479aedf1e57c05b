package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	scheduleMocks "campusbook/internal/domains/schedule/mocks"
	"campusbook/internal/domains/schedule/model"
	"campusbook/internal/domains/schedule/model/dto"
	"campusbook/internal/domains/schedule/service"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
)

type serviceMocks struct {
	repo  *scheduleMocks.MockSchedule
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Schedule, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		repo:  scheduleMocks.NewMockSchedule(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Schedule.OpenHour = 8
	cfg.Schedule.CloseHour = 22
	cfg.Schedule.SlotMinutes = 60
	cfg.Schedule.AdvanceDays = 30

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func (m *serviceMocks) allowBackground() {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (m *serviceMocks) cacheAlwaysMisses() {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func storedPolicy() model.SchedulePolicy {
	return model.SchedulePolicy{
		ID:          "policy-1",
		OpenHour:    9,
		CloseHour:   21,
		SlotMinutes: 30,
		AdvanceDays: 14,
	}
}

func TestScheduleService_Policy(t *testing.T) {
	t.Run("existing policy is returned", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.allowBackground()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPolicy(), nil)

		policy, err := svc.Policy(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "policy-1", policy.ID)
		assert.Equal(t, 9, policy.OpenHour)
	})

	t.Run("missing policy is seeded from configuration defaults", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.allowBackground()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SchedulePolicy{}, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, policy model.SchedulePolicy) error {
				assert.NotEmpty(t, policy.ID)
				assert.Equal(t, 8, policy.OpenHour)
				assert.Equal(t, 22, policy.CloseHour)
				assert.Equal(t, 60, policy.SlotMinutes)
				assert.Equal(t, 30, policy.AdvanceDays)

				return nil
			})

		policy, err := svc.Policy(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 22, policy.CloseHour)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				policy, ok := dest.(*model.SchedulePolicy)
				require.True(t, ok)
				*policy = storedPolicy()

				return nil
			})

		policy, err := svc.Policy(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "policy-1", policy.ID)
	})
}

func TestScheduleService_Update(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	userCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	t.Run("successful update invalidates the cached policy", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPolicy(), nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldOpenHour)

				return nil
			})

		err := svc.Update(userCtx, dto.UpdateScheduleRequest{OpenHour: intPtr(10)})

		assert.NoError(t, err)
	})

	t.Run("empty update request", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(userCtx, dto.UpdateScheduleRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("open hour past close hour is rejected", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPolicy(), nil)

		err := svc.Update(userCtx, dto.UpdateScheduleRequest{OpenHour: intPtr(23)})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("non-positive slot length is rejected", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPolicy(), nil)

		err := svc.Update(userCtx, dto.UpdateScheduleRequest{SlotMinutes: intPtr(0)})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestScheduleService_Slots(t *testing.T) {
	svc, m := newService(t)
	m.cacheAlwaysMisses()
	m.allowBackground()

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPolicy(), nil)

	res, err := svc.Slots(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Slots, 24)
	assert.Equal(t, "09:00-09:30", res.Slots[0].Label)
	assert.Equal(t, "09:00", res.OperatingHours.Open)
	assert.Equal(t, "21:00", res.OperatingHours.Close)
}
