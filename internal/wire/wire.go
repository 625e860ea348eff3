package wire

import (
	"net/http"

	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/roster"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/export"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes the service and handler graph and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	loader := roster.NewLoader(config.Roster.Dir, logger)
	exporter := export.NewExcelExporter(config.Feedback.ExportPath, logger)

	service := usecase.NewService(repo, loader, exporter, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireVenue(r, handler.Venue)
	wireBooking(r, handler.Booking, handler.User)
	wireInvitation(r, handler.Invitation)
	wireRoster(r, handler.Roster, handler.Booking)
	wireFeedback(r, handler.Feedback)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
