package health

import (
	"net/http"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/shared/constant"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
	otel  otel.Otel
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return Handler{
		db:    db,
		redis: redis,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports the liveness of the service and its backing stores.
// @Summary Health check
// @Description Check the service and its database/cache connections.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Failure 503 {object} response.Message "Service is unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("read database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("write database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("redis is unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
