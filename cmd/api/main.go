package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mera-studio/studio-backend-go/internal/config"
	"github.com/mera-studio/studio-backend-go/internal/domain/shift"
	appHTTP "github.com/mera-studio/studio-backend-go/internal/handler/http"
	"github.com/mera-studio/studio-backend-go/internal/pkg/cron"
	"github.com/mera-studio/studio-backend-go/internal/pkg/database"
	"github.com/mera-studio/studio-backend-go/internal/pkg/sse"
	"github.com/mera-studio/studio-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mera-studio/studio-backend-go/internal/service/attendance"
	crewService "github.com/mera-studio/studio-backend-go/internal/service/crew"
	financeService "github.com/mera-studio/studio-backend-go/internal/service/finance"
	payrollService "github.com/mera-studio/studio-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	crewRepo := postgresql.NewCrewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	revenueRepo := postgresql.NewRevenueRepository(db)

	catalog := shift.NewCatalog()
	hub := sse.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, crewRepo, catalog, cfg.Payroll, hub)
	crewSvc := crewService.NewCrewService(crewRepo, hub)
	payrollSvc := payrollService.NewPayrollService(crewRepo, revenueRepo, catalog)
	financeSvc := financeService.NewFinanceService(revenueRepo, attendanceRepo, crewRepo, catalog, cfg.Payroll, hub)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	crewHandler := appHTTP.NewCrewHandler(crewSvc)
	shiftHandler := appHTTP.NewShiftHandler(catalog)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	financeHandler := appHTTP.NewFinanceHandler(financeSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("close-dangling-punches", time.Hour, attendanceJobs.CloseDanglingPunches)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		attendanceHandler,
		crewHandler,
		shiftHandler,
		payrollHandler,
		financeHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
