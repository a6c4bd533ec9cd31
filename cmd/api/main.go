package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/atlashr/timecore-backend-go/internal/config"
	appHTTP "github.com/atlashr/timecore-backend-go/internal/handler/http"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/atlashr/timecore-backend-go/internal/pkg/jwt"
	"github.com/atlashr/timecore-backend-go/internal/repository/postgresql"
	attendanceService "github.com/atlashr/timecore-backend-go/internal/service/attendance"
	leaveService "github.com/atlashr/timecore-backend-go/internal/service/leave"
	overtimeService "github.com/atlashr/timecore-backend-go/internal/service/overtime"
	payrollService "github.com/atlashr/timecore-backend-go/internal/service/payroll"
	recoveryService "github.com/atlashr/timecore-backend-go/internal/service/recovery"
	scheduleService "github.com/atlashr/timecore-backend-go/internal/service/schedule"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	recoveryRepo := postgresql.NewRecoveryRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	primeTypeRepo := postgresql.NewPrimeTypeRepository(db)
	employeePrimeRepo := postgresql.NewEmployeePrimeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workScheduleRepo, cfg.Engine)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, cfg.Engine)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	recoverySvc := recoveryService.NewRecoveryService(recoveryRepo, recoveryRepo, cfg.Engine)
	scheduleSvc := scheduleService.NewWorkScheduleService(workScheduleRepo)
	payrollSvc := payrollService.NewPayrollService(primeTypeRepo, employeePrimeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, cfg.Engine)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	recoveryHandler := appHTTP.NewRecoveryHandler(recoverySvc, cfg.Engine)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, Version: version},
		jwtService,
		attendanceHandler,
		leaveHandler,
		overtimeHandler,
		recoveryHandler,
		scheduleHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
