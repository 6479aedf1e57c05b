package venue

import (
	"net/http"
	"campusbook/infras/otel"
	"campusbook/internal/domains/venue/model"
	"campusbook/internal/domains/venue/model/dto"
	"campusbook/internal/domains/venue/service"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/validator"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Patch("/{id}", handler.UpdateVenue)
		routerGroup.Delete("/{id}", handler.DeleteVenue)
	})
}

// CreateVenue handles the creation of a new venue.
// @Summary Create a new venue
// @Description Create a new bookable venue with the provided details.
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Create Venue Request"
// @Success 201 {object} response.Message "Venue created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues [post]
// @Security BearerAuth
func (handler *Handler) CreateVenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	req := dto.CreateVenueRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Venue created successfully")
}

// GetVenues retrieves all venues based on query parameters.
// @Summary Get all venues
// @Description Retrieve all venues with optional filtering and pagination.
// @Tags Venue
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param capacity_class query string false "Filter by capacity class (small, medium, large)"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetVenuesResponse] "List of venues"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if class := r.URL.Query().Get("capacity_class"); class != "" {
		if classFilter := service.CapacityClassFilter(class); len(classFilter.Filters) > 0 {
			filterGroup.Filters = append(filterGroup.Filters, classFilter)
		}
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	venues, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venues retrieved successfully")

	response.WithJSON(w, http.StatusOK, venues)
}

// GetVenueByID retrieves a venue by its ID.
// @Summary Get a venue by ID
// @Description Retrieve a venue by its unique identifier.
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Data[dto.VenueResponse] "Venue details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [get]
func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	venue, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue retrieved successfully")

	response.WithJSON(w, http.StatusOK, venue)
}

// UpdateVenue updates an existing venue by its ID.
// @Summary Update a venue by ID
// @Description Update the details of an existing venue.
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.UpdateVenueRequest true "Update Venue Request"
// @Success 200 {object} response.Message "Venue updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVenueRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update venue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Venue updated successfully")
}

// DeleteVenue deletes a venue by its ID.
// @Summary Delete a venue by ID
// @Description Delete a venue using its unique identifier.
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Message "Venue deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete venue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Venue deleted successfully")
}
