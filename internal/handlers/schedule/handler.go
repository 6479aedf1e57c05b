package schedule

import (
	"net/http"
	"campusbook/infras/otel"
	"campusbook/internal/domains/schedule/model/dto"
	"campusbook/internal/domains/schedule/service"
	"campusbook/shared/constant"
	"campusbook/shared/validator"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedule)
		routerGroup.Patch("/", handler.UpdateSchedule)
		routerGroup.Get("/slots", handler.GetSlots)
	})
}

// GetSchedule returns the active operating-hours policy.
// @Summary Get the schedule policy
// @Description Retrieve the operating hours, slot length and booking horizon.
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule policy"
// @Failure 500 {object} response.Error
// @Router /v1/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	schedule, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule policy")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule policy retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// UpdateSchedule changes the operating-hours policy.
// @Summary Update the schedule policy
// @Description Update operating hours, slot length or booking horizon. Existing bookings are not revalidated.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Message "Schedule policy updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	req := dto.UpdateScheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update schedule policy")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Schedule policy updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Schedule policy updated successfully")
}

// GetSlots lists the bookable time slots of a day under the current policy.
// @Summary Get the day's time slots
// @Description List the slot grid generated from the current operating hours and slot length.
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SlotsResponse] "Time slots"
// @Failure 500 {object} response.Error
// @Router /v1/schedule/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	slots, err := handler.service.Slots(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
