package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/mera-studio/studio-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	crewHandler CrewHandler,
	shiftHandler ShiftHandler,
	payrollHandler PayrollHandler,
	financeHandler FinanceHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "studio-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Get("/recommend-shift", attendanceHandler.RecommendShift)
		})

		r.Route("/crew", func(r chi.Router) {
			r.Get("/", crewHandler.List)
			r.Post("/", crewHandler.Create)
			r.Patch("/{id}", crewHandler.Update)
			r.Post("/{id}/resign", crewHandler.Resign)
		})

		r.Get("/shifts", shiftHandler.List)

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", payrollHandler.Compute)
			r.Get("/{crewID}/payslip", payrollHandler.Payslip)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Get("/daily", financeHandler.DailyLedger)
			r.Post("/import", financeHandler.Import)
		})

		r.Get("/events", eventsHandler.Stream)
	})
	return r
}
