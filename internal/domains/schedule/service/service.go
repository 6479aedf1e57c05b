package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/schedule/model"
	"campusbook/internal/domains/schedule/model/dto"
	"campusbook/internal/domains/schedule/repository"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPolicy = "schedule:policy"

	seededBy = "system"
)

type Schedule interface {
	// Policy loads the operating-hours policy, seeding it from configuration
	// defaults when no row exists yet.
	Policy(ctx context.Context) (model.SchedulePolicy, error)
	Get(ctx context.Context) (dto.ScheduleResponse, error)
	Update(ctx context.Context, req dto.UpdateScheduleRequest) error
	Slots(ctx context.Context) (dto.SlotsResponse, error)
}

type serviceImpl struct {
	repo  repository.Schedule
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Policy(ctx context.Context) (policy model.SchedulePolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Policy")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetPolicy, &policy)
	if err == nil && policy.ID != constant.Empty {
		return policy, nil
	}

	policy, err = s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule policy")

		return policy, fmt.Errorf("failed to get schedule policy: %w", err)
	}

	if policy.ID == constant.Empty {
		policy = s.defaultPolicy()

		if err = s.repo.Insert(ctx, policy); err != nil {
			log.Error().Err(err).Msg("failed to seed schedule policy")

			return policy, fmt.Errorf("failed to seed schedule policy: %w", err)
		}

		log.Info().
			Int("openHour", policy.OpenHour).
			Int("closeHour", policy.CloseHour).
			Int("slotMinutes", policy.SlotMinutes).
			Msg("seeded schedule policy from configuration defaults")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetPolicy, policy, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule policy to cache")
		}
	}()

	return policy, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	policy, err := s.Policy(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(policy)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateScheduleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	policy, err := s.Policy(ctx)
	if err != nil {
		return err
	}

	merged := policy
	if req.OpenHour != nil {
		merged.OpenHour = *req.OpenHour
	}

	if req.CloseHour != nil {
		merged.CloseHour = *req.CloseHour
	}

	if req.SlotMinutes != nil {
		merged.SlotMinutes = *req.SlotMinutes
	}

	if req.AdvanceDays != nil {
		merged.AdvanceDays = *req.AdvanceDays
	}

	if merged.OpenHour >= merged.CloseHour {
		return failure.BadRequestFromString("open hour must be before close hour") // nolint:wrapcheck
	}

	if merged.SlotMinutes <= 0 {
		return failure.BadRequestFromString("slot minutes must be positive") // nolint:wrapcheck
	}

	if merged.AdvanceDays <= 0 {
		return failure.BadRequestFromString("advance days must be positive") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	filter := shared.FilterByID(policy.ID, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update schedule policy")

		return fmt.Errorf("failed to update schedule policy: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetPolicy); err != nil {
			log.Error().Err(err).Msg("failed to delete schedule policy cache")
		}
	}()

	return nil
}

func (s *serviceImpl) Slots(ctx context.Context) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	policy, err := s.Policy(ctx)
	if err != nil {
		return res, err
	}

	res.Slots = policy.DaySlots()
	res.OperatingHours = dto.OperatingHours{
		Open:  policy.OpenLabel(),
		Close: policy.CloseLabel(),
	}

	return res, nil
}

func (s *serviceImpl) defaultPolicy() model.SchedulePolicy {
	now := timezone.Now()

	return model.SchedulePolicy{
		ID:          uuid.NewString(),
		OpenHour:    s.cfg.Schedule.OpenHour,
		CloseHour:   s.cfg.Schedule.CloseHour,
		SlotMinutes: s.cfg.Schedule.SlotMinutes,
		AdvanceDays: s.cfg.Schedule.AdvanceDays,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  seededBy,
			ModifiedBy: seededBy,
		},
	}
}
