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
	venueMocks "campusbook/internal/domains/venue/mocks"
	"campusbook/internal/domains/venue/model"
	"campusbook/internal/domains/venue/model/dto"
	"campusbook/internal/domains/venue/service"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
)

type serviceMocks struct {
	repo  *venueMocks.MockVenue
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Venue, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		repo:  venueMocks.NewMockVenue(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func (m *serviceMocks) allowBackground() {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (m *serviceMocks) cacheAlwaysMisses() {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func userCtx(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestVenueService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, m := newService(t)
		m.allowBackground()

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, venue model.Venue) error {
				assert.NotEmpty(t, venue.ID)
				assert.Equal(t, "Innovation Hall", venue.Name)
				assert.True(t, venue.Active)
				assert.Equal(t, "admin-1", venue.CreatedBy)

				return nil
			})

		req := dto.CreateVenueRequest{Name: "Innovation Hall", Location: "Building A", Capacity: 40}
		err := svc.Create(userCtx("admin-1"), req)

		assert.NoError(t, err)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		err := svc.Create(userCtx("admin-1"), dto.CreateVenueRequest{Name: "Innovation Hall"})

		assert.Error(t, err)
	})
}

func TestVenueService_Get(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				res, ok := dest.(*dto.VenueResponse)
				require.True(t, ok)
				res.ID = "venue-1"
				res.Name = "Innovation Hall"

				return nil
			})

		res, err := svc.Get(context.Background(), "venue-1")

		assert.NoError(t, err)
		assert.Equal(t, "Innovation Hall", res.Name)
	})

	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()
		m.allowBackground()

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Venue{ID: "venue-1", Name: "Innovation Hall", Capacity: 40, Active: true}, nil)

		res, err := svc.Get(context.Background(), "venue-1")

		assert.NoError(t, err)
		assert.Equal(t, "venue-1", res.ID)
		assert.Equal(t, 40, res.Capacity)
	})

	t.Run("venue not found", func(t *testing.T) {
		svc, m := newService(t)
		m.cacheAlwaysMisses()

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestVenueService_GetAll(t *testing.T) {
	svc, m := newService(t)
	m.cacheAlwaysMisses()
	m.allowBackground()

	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Venue{
			{ID: "venue-1", Name: "Innovation Hall", Capacity: 40, Active: true},
			{ID: "venue-2", Name: "Seminar Room B", Capacity: 15, Active: true},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	require.Len(t, res.Venues, 2)
	assert.Equal(t, "Seminar Room B", res.Venues[1].Name)
}

func TestVenueService_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		svc, m := newService(t)
		m.allowBackground()

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Renovated Hall", fields[model.FieldName])

				return nil
			})

		err := svc.Update(userCtx("admin-1"), dto.UpdateVenueRequest{Name: "Renovated Hall"}, "venue-1")

		assert.NoError(t, err)
	})

	t.Run("venue not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(userCtx("admin-1"), dto.UpdateVenueRequest{Name: "Ghost Hall"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestVenueService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, m := newService(t)
		m.allowBackground()

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "venue-1")

		assert.NoError(t, err)
	})

	t.Run("venue not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCapacityClassFilter(t *testing.T) {
	tests := []struct {
		name       string
		class      string
		numFilters int
	}{
		{name: "small is a single upper bound", class: model.CapacityClassSmall, numFilters: 1},
		{name: "medium is a bounded range", class: model.CapacityClassMedium, numFilters: 2},
		{name: "large is a single lower bound", class: model.CapacityClassLarge, numFilters: 1},
		{name: "unknown class filters nothing", class: "gigantic", numFilters: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := service.CapacityClassFilter(tt.class)

			assert.Len(t, group.Filters, tt.numFilters)
		})
	}
}
