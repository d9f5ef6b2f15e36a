package health

import (
	"net/http"

	"innkeeper/infras/postgres"
	"innkeeper/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check reports whether the service and its database are reachable.
// @Summary Health check
// @Description Report whether the service and its database connections are healthy.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Message "Server unhealthy"
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("read database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("write database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
