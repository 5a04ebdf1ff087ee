package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ozzus/nextbid/internal/application/service"
	"go.uber.org/zap"
)

// NewRouter mounts the bid planner API. timeout bounds each request's
// context; zero disables it.
func NewRouter(log *zap.Logger, bidService *service.BidService, timeout time.Duration) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	h := &Handler{log: log, service: bidService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(recoverer(log))
	r.Use(loggingMiddleware(log))
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", healthHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/commands/definitions", h.ListDefinitions)
		r.Post("/commands/build", h.BuildCommand)
		r.Post("/commands/simulate", h.SimulateCommand)
		r.Post("/commands/match", h.MatchCommand)
		r.Post("/commands/render", h.RenderCommands)

		r.Get("/profiles/{id}/bid-group", h.CompileBidGroup)
		r.Get("/profiles/{id}/bid-group/preview", h.PreviewBidGroup)

		r.Post("/preferences/preview", h.PreviewPreferences)
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func loggingMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
					writeError(w, http.StatusInternalServerError, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
