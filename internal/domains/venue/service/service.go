package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/venue/model"
	"campusbook/internal/domains/venue/model/dto"
	"campusbook/internal/domains/venue/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetVenue    = "venue:get"
	cacheGetAllVenue = "venue:gets"
	cacheCountVenue  = "venue:count"
)

type Venue interface {
	Create(ctx context.Context, req dto.CreateVenueRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVenuesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	Update(ctx context.Context, req dto.UpdateVenueRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Venue
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Venue, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Venue {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// CapacityClassFilter maps a capacity class keyword to a range filter.
// Unknown classes yield an empty group so the list falls through unfiltered.
func CapacityClassFilter(class string) gDto.FilterGroup {
	switch class {
	case model.CapacityClassSmall:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldCapacity, Value: model.CapacitySmallMax, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			},
		}
	case model.CapacityClassMedium:
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{ArgName: "capacity_lo", Field: model.FieldCapacity, Value: model.CapacityMediumLo, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
				gDto.Filter{ArgName: "capacity_hi", Field: model.FieldCapacity, Value: model.CapacityMediumHi, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			},
		}
	case model.CapacityClassLarge:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldCapacity, Value: model.CapacityLargeMin, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			},
		}
	default:
		return gDto.FilterGroup{}
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create venue")

		return fmt.Errorf("failed to create venue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenue)
		shared.InvalidateCaches(c, s.cache, cacheCountVenue)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVenue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venues")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, fmt.Errorf("failed to get venues: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venues to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVenue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venue count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVenue, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venue")

		return res, nil
	}

	venue, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == constant.Empty {
		return res, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	res.FromModel(venue)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVenueRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		log.Error().Msg("venue not found")

		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update venue")

		return fmt.Errorf("failed to update venue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVenue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete venue cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenue)
		shared.InvalidateCaches(c, s.cache, cacheCountVenue)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		log.Error().Msg("venue not found")

		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete venue")

		return fmt.Errorf("failed to delete venue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVenue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete venue from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenue)
		shared.InvalidateCaches(c, s.cache, cacheCountVenue)
	}()

	return nil
}
