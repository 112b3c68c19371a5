package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/config"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	appHTTP "github.com/leaveflow/leaveflow-backend-go/internal/handler/http"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/postgresql"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	attendanceService "github.com/leaveflow/leaveflow-backend-go/internal/service/attendance"
	serviceAuth "github.com/leaveflow/leaveflow-backend-go/internal/service/auth"
	employeeService "github.com/leaveflow/leaveflow-backend-go/internal/service/employee"
	leaveService "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
	notificationService "github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
	reportService "github.com/leaveflow/leaveflow-backend-go/internal/service/report"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

const refreshInterval = 10 * time.Second

type repositories struct {
	employees     employee.Repository
	leaveTypes    leave.TypeRepository
	requests      leave.RequestRepository
	holidays      holiday.Repository
	attendance    attendance.Repository
	notifications notification.Repository
}

func openStorage(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.Storage.Mode {
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return repositories{
			employees:     postgresql.NewEmployeeRepository(db),
			leaveTypes:    postgresql.NewLeaveTypeRepository(db),
			requests:      postgresql.NewLeaveRequestRepository(db),
			holidays:      postgresql.NewHolidayRepository(db),
			attendance:    postgresql.NewAttendanceRepository(db),
			notifications: postgresql.NewNotificationRepository(db),
		}, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return repositories{}, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := db.Seed(ctx); err != nil {
			return repositories{}, fmt.Errorf("failed to seed sqlite database: %w", err)
		}
		return repositories{
			employees:     sqlite.NewEmployeeRepository(db),
			leaveTypes:    sqlite.NewLeaveTypeRepository(db),
			requests:      sqlite.NewLeaveRequestRepository(db),
			holidays:      sqlite.NewHolidayRepository(db),
			attendance:    sqlite.NewAttendanceRepository(db),
			notifications: sqlite.NewNotificationRepository(db),
		}, nil

	default:
		return repositories{}, fmt.Errorf("unsupported storage mode: %s", cfg.Storage.Mode)
	}
}

// seedAdmin bootstraps the first account so the API is usable on a fresh
// database. Runs only when the roster is empty and both env vars are set.
func seedAdmin(ctx context.Context, employees *employeeService.EmployeeService, logger *slog.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	existing, err := employees.List(ctx)
	if err != nil || len(existing) > 0 {
		return
	}

	_, err = employees.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Administrator",
		Email:      email,
		Password:   password,
		Role:       string(employee.RoleAdmin),
		Gender:     string(employee.Male),
		Department: "Management",
		JoinDate:   time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		logger.Warn("failed to seed admin account", "error", err)
		return
	}
	logger.Info("seeded initial admin account", "email", email)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open storage: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	st := store.New(
		repos.employees,
		repos.leaveTypes,
		repos.requests,
		repos.holidays,
		repos.attendance,
		repos.notifications,
		logger,
	)
	if err := st.LoadAll(ctx); err != nil {
		logger.Warn("initial cache load failed, serving stale state until the backend recovers", "error", err)
	}
	st.StartAutoRefresh(ctx, refreshInterval)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	notifier := notificationService.NewNotificationService(st, logger)
	authSvc := serviceAuth.NewAuthService(repos.employees, JWTService)
	employeeSvc := employeeService.NewEmployeeService(st)
	requestSvc := leaveService.NewRequestService(st, notifier, logger)
	attendanceSvc := attendanceService.NewAttendanceService(st, notifier, logger)
	reportSvc := reportService.NewReportService(st, logger)

	seedAdmin(ctx, employeeSvc, logger)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Status:       appHTTP.NewStatusHandler(st, cfg.Storage.Mode),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(requestSvc, st),
		Holiday:      appHTTP.NewHolidayHandler(st),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Notification: appHTTP.NewNotificationHandler(notifier),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", addr, "storage", cfg.Storage.Mode)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
