package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/org-payroll-api/internal/config"
	"github.com/org-payroll-api/internal/handler"
	"github.com/org-payroll-api/internal/logger"
	"github.com/org-payroll-api/internal/repository"
	"github.com/org-payroll-api/internal/service"
	"github.com/org-payroll-api/migrations"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Инициализация логгера
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Подключение к БД
	db, err := connectDB(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Инициализация репозиториев
	txManager := repository.NewTxManager(db)
	regionRepo := repository.NewRegionRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	calcRepo := repository.NewCalculationTableRepository(db)
	reportRepo := repository.NewReportRepository(db, cfg.Report.ExcludeDeleted)

	// Инициализация сервисов
	regionService := service.NewRegionService(txManager, regionRepo)
	orgService := service.NewOrganizationService(txManager, regionRepo, orgRepo)
	empService := service.NewEmployeeService(txManager, empRepo, orgRepo)
	calcService := service.NewCalculationTableService(txManager, calcRepo, empRepo, orgRepo, reportRepo)

	// Инициализация хендлеров
	pageSize := cfg.Page.DefaultSize
	router := handler.NewRouter(
		handler.NewRegionHandler(regionService, log, pageSize),
		handler.NewOrganizationHandler(orgService, log, pageSize),
		handler.NewEmployeeHandler(empService, log, pageSize),
		handler.NewCalculationTableHandler(calcService, log, pageSize),
		log,
	)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("could not gracefully shutdown the server", zap.Error(err))
		}
		close(done)
	}()

	log.Info("server is starting", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("could not listen on port", zap.String("port", cfg.Server.Port), zap.Error(err))
	}

	<-done
	log.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         logger.Gorm(log),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
					sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		log.Warn("database is not ready", zap.Int("attempt", attempt+1), zap.Error(err))
		time.Sleep(time.Second)
	}

	return nil, errors.Wrap(err, "failed to connect to database after 30 attempts")
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set dialect")
	}

	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}
