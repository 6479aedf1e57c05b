package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusbook/config"
	"campusbook/infras/kafka"
	"campusbook/infras/mailer"
	"campusbook/infras/otel"
	"campusbook/infras/qrcode"
	"campusbook/infras/s3"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/repository"
	scheduleModel "campusbook/internal/domains/schedule/model"
	scheduleService "campusbook/internal/domains/schedule/service"
	userModel "campusbook/internal/domains/user/model"
	userRepo "campusbook/internal/domains/user/repository"
	venueModel "campusbook/internal/domains/venue/model"
	venueRepo "campusbook/internal/domains/venue/repository"
	"campusbook/shared"
	"campusbook/shared/base64"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	clashMessage = "the venue is already booked during this time"
)

// BookingEvent is the payload published on booking lifecycle topics.
type BookingEvent struct {
	BookingID string `json:"booking_id"`
	VenueID   string `json:"venue_id"`
	Status    string `json:"status"`
	Actor     string `json:"actor"`
	At        string `json:"at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetMy(ctx context.Context, req gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Decide(ctx context.Context, req dto.DecideBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, venueID, date string) (dto.AvailabilityResponse, error)
	CheckWindow(ctx context.Context, venueID, startTime, endTime string) (dto.CheckAvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	venueRepo venueRepo.Venue
	userRepo  userRepo.User
	schedule  scheduleService.Schedule
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	kafka     kafka.Client
	mailer    mailer.Mailer
	qrcode    qrcode.Generator
}

func New(
	repo repository.Booking,
	venueRepo venueRepo.Venue,
	userRepo userRepo.User,
	schedule scheduleService.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafkaClient kafka.Client,
	mailer mailer.Mailer,
	qrcode qrcode.Generator,
) Booking {
	return &serviceImpl{
		repo:      repo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		schedule:  schedule,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		kafka:     kafkaClient,
		mailer:    mailer,
		qrcode:    qrcode,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	venue, err := s.venueRepo.Get(ctx, shared.FilterByID(req.VenueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if venue.ID == constant.Empty {
		return failure.BadRequestFromString("venue does not exist") // nolint:wrapcheck
	}

	if !venue.Active {
		return failure.BadRequestFromString("venue is not open for booking") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, constant.Empty)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.validateWindow(ctx, booking, constant.Empty); err != nil {
		return err
	}

	// The document is uploaded only once the window checks pass, so a
	// rejected request leaves no orphaned object behind.
	if req.Document != constant.Empty {
		booking.DocumentURL, err = s.uploadDocument(ctx, req.Document)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload booking document")

			return fmt.Errorf("failed to upload booking document: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return s.translateClash(err, "failed to create booking")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, s.cfg.Kafka.Topics.BookingCreated, booking, user)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMy(ctx context.Context, req gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMy")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCreatedBy,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !requesterCanAccess(ctx, booking) {
		return res, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, shared.BuildCacheKey(cacheGetBooking, id), booking, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !requesterCanAccess(ctx, current) {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if current.Status == model.StatusRejected {
		return failure.Conflict("rejected bookings cannot be edited; create a new booking") // nolint:wrapcheck
	}

	candidate, err := req.ApplyTo(current)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.validateWindow(ctx, candidate, id); err != nil {
		return err
	}

	// The replacement document is uploaded only once the window checks pass,
	// so a rejected edit leaves no orphaned object behind.
	if req.Document != constant.Empty {
		candidate.DocumentURL, err = s.uploadDocument(ctx, req.Document)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload booking document")

			return fmt.Errorf("failed to upload booking document: %w", err)
		}
	}

	// Any edit re-enters review: status returns to PENDING and the previous
	// decision is cleared. The entry credential, if one was issued, stays.
	updatedFields := map[string]any{
		model.FieldVenueID:        candidate.VenueID,
		model.FieldPurpose:        candidate.Purpose,
		model.FieldEventName:      candidate.EventName,
		model.FieldDescription:    candidate.Description,
		model.FieldAddonEquipment: candidate.AddonEquipment,
		model.FieldDocumentURL:    candidate.DocumentURL,
		model.FieldTimeSlot:       candidate.TimeSlot,
		model.FieldStartTime:      candidate.StartTime,
		model.FieldEndTime:        candidate.EndTime,
		model.FieldStatus:         model.StatusPending,
		model.FieldApprovedBy:     nil,
		model.FieldApprovedAt:     nil,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return s.translateClash(err, "failed to update booking")
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Decide(ctx context.Context, req dto.DecideBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	// Re-issuing the same decision is a no-op, which keeps retries harmless.
	if booking.Status == req.Decision {
		return nil
	}

	// Both outcomes record the deciding admin and time: a REJECTED row keeps
	// who rejected it and when. Only an owner edit clears these fields.
	now := timezone.Now()
	updatedFields := map[string]any{
		model.FieldStatus:        req.Decision,
		model.FieldApprovedBy:    admin,
		model.FieldApprovedAt:    now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: admin,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to decide booking")

		return fmt.Errorf("failed to decide booking: %w", err)
	}

	booking.Status = req.Decision

	// Credential issuance is one-shot: an approval that follows an earlier
	// approval cycle reuses the stored credential. A fresh issuance is set on
	// the local copy so the notification below carries the link.
	if req.Decision == model.StatusApproved && booking.CredentialURL == constant.Empty {
		booking.CredentialURL = s.issueCredential(ctx, booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, s.cfg.Kafka.Topics.BookingDecided, booking, admin)
		s.notifyDecision(c, booking)
	}()

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !requesterCanAccess(ctx, booking) {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Availability(ctx context.Context, venueID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := dto.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.venueRepo.Exist(ctx, shared.FilterByID(venueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return res, fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	policy, err := s.schedule.Policy(ctx)
	if err != nil {
		return res, err
	}

	// Only APPROVED bookings occupy slots in this view; a PENDING request
	// blocks new writes but is not shown as taken.
	approved, err := s.bookingsForDay(ctx, venueID, day, []string{model.StatusApproved})
	if err != nil {
		return res, err
	}

	res.VenueID = venueID
	res.Date = date
	res.AvailableSlots = []scheduleModel.TimeSlot{}
	res.BookedSlots = []dto.BookedSlot{}
	res.OperatingHours.Open = policy.OpenLabel()
	res.OperatingHours.Close = policy.CloseLabel()

	for _, slot := range policy.DaySlots() {
		slotStart, slotEnd, err := dto.ResolveTimeSlot(slot.Label, day)
		if err != nil {
			continue
		}

		conflicts := model.FindConflicts(slotStart, slotEnd, approved, constant.Empty)
		if len(conflicts) == 0 {
			res.AvailableSlots = append(res.AvailableSlots, slot)

			continue
		}

		res.BookedSlots = append(res.BookedSlots, dto.BookedSlot{
			TimeSlot:  slot,
			EventName: conflicts[0].EventName,
		})
	}

	return res, nil
}

func (s *serviceImpl) CheckWindow(ctx context.Context, venueID, startTime, endTime string) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := time.Parse(constant.DateFormat, startTime)
	if err != nil {
		return res, failure.BadRequest(dto.ErrMalformedTime) // nolint:wrapcheck
	}

	end, err := time.Parse(constant.DateFormat, endTime)
	if err != nil {
		return res, failure.BadRequest(dto.ErrMalformedTime) // nolint:wrapcheck
	}

	exist, err := s.venueRepo.Exist(ctx, shared.FilterByID(venueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return res, fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	approved, err := s.bookingsForDay(ctx, venueID, start, []string{model.StatusApproved})
	if err != nil {
		return res, err
	}

	res.VenueID = venueID
	res.StartTime = startTime
	res.EndTime = endTime
	res.Available = len(model.FindConflicts(start, end, approved, constant.Empty)) == 0

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	var booking model.Booking

	err := s.cache.Get(ctx, shared.BuildCacheKey(cacheGetBooking, id), &booking)
	if err == nil && booking.ID != constant.Empty {
		return booking, nil
	}

	booking, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// validateWindow runs the pure window checks against the venue's other
// bookings on the candidate's day.
func (s *serviceImpl) validateWindow(ctx context.Context, candidate model.Booking, excludeID string) error {
	policy, err := s.schedule.Policy(ctx)
	if err != nil {
		return err
	}

	existing, err := s.bookingsForDay(ctx, candidate.VenueID, candidate.StartTime, []string{model.StatusPending, model.StatusApproved})
	if err != nil {
		return err
	}

	errs := model.ValidateWindow(candidate, existing, policy, timezone.Now(), excludeID)
	if len(errs) == 0 {
		return nil
	}

	if model.OnlyConflict(errs) {
		return failure.Conflict(errs[0].Message) // nolint:wrapcheck
	}

	return failure.BadRequestFromString(model.JoinFieldErrors(errs)) // nolint:wrapcheck
}

func (s *serviceImpl) bookingsForDay(ctx context.Context, venueID string, day time.Time, statuses []string) ([]model.Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldVenueID, Value: venueID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{ArgName: "day_start", Field: model.FieldStartTime, Value: dayStart, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "day_end", Field: model.FieldEndTime, Value: dayEnd, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for day")

		return nil, fmt.Errorf("failed to get bookings for day: %w", err)
	}

	return bookings, nil
}

// translateClash maps a postgres exclusion violation (the overlap constraint
// racing a concurrent insert) onto the same conflict failure the in-process
// check produces.
func (s *serviceImpl) translateClash(err error, wrap string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict(clashMessage) // nolint:wrapcheck
	}

	return fmt.Errorf("%s: %w", wrap, err)
}

func (s *serviceImpl) uploadDocument(ctx context.Context, dataURI string) (string, error) {
	contentType, data, err := base64.DecodeDataURI(dataURI)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	fileName := uuid.NewString() + extensionFor(contentType)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return url, nil
}

// issueCredential renders and stores the entry QR for an approved booking,
// returning the credential URL. Failures are logged, never surfaced: the
// approval itself already happened. On failure the returned URL is empty.
func (s *serviceImpl) issueCredential(ctx context.Context, booking model.Booking) string {
	image, err := s.qrcode.Generate(booking.ID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to generate entry credential")

		return constant.Empty
	}

	fileName := fmt.Sprintf("credential-%s.jpeg", booking.ID)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, "image/jpeg", image)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to upload entry credential")

		return constant.Empty
	}

	updatedFields := map[string]any{
		model.FieldCredentialURL: url,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to store entry credential URL")
	}

	return url
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking model.Booking, actor string) {
	event := BookingEvent{
		BookingID: booking.ID,
		VenueID:   booking.VenueID,
		Status:    booking.Status,
		Actor:     actor,
		At:        timezone.Now().Format(constant.DateFormat),
	}

	if err := s.kafka.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) notifyDecision(ctx context.Context, booking model.Booking) {
	owner, err := s.userRepo.Get(ctx, shared.FilterByID(booking.CreatedBy, userModel.FieldID, userModel.TableName))
	if err != nil || owner.Email == constant.Empty {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to resolve booking owner for notification")

		return
	}

	subject := fmt.Sprintf("Your booking %q was %s", booking.EventName, booking.Status)
	body := fmt.Sprintf(
		"Hello,\n\nYour booking %q (%s) has been %s.\n",
		booking.EventName, booking.TimeSlot, booking.Status,
	)

	if booking.Status == model.StatusApproved && booking.CredentialURL != constant.Empty {
		body += fmt.Sprintf("\nYour entry credential: %s\n", booking.CredentialURL)
	}

	if err := s.mailer.Send(ctx, owner.Email, subject, body); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to send decision notification")
	}
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpeg"
	default:
		return constant.Empty
	}
}

func requesterCanAccess(ctx context.Context, booking model.Booking) bool {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin || role == constant.RoleSuperAdmin {
		return true
	}

	return user != constant.Empty && user == booking.CreatedBy
}
