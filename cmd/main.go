package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/campushub/reservation-platform/internal/catalog"
	"github.com/campushub/reservation-platform/internal/config"
	"github.com/campushub/reservation-platform/internal/db"
	"github.com/campushub/reservation-platform/internal/handler"
	"github.com/campushub/reservation-platform/internal/mail"
	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
	"github.com/campushub/reservation-platform/internal/service"
)

func main() {
	// 1. Конфигурация: .env + переменные окружения.
	appCfg := config.Load()
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей и сид каталога.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	if err := catalog.Seed(gormDB, catalog.DefaultBuildings(), catalog.DefaultCatalog()); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	reservationRepo := repository.NewGormReservationRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)
	loginCodeRepo := repository.NewGormLoginCodeRepository(gormDB)
	buildingRepo := repository.NewGormBuildingRepository(gormDB)
	accessRepo := repository.NewGormAccessLogRepository(gormDB)

	// 5. Каталог ресурсов: первичный персистентный источник с деградацией
	// в статический справочник на путях чтения.
	source := catalog.NewFallbackSource(
		catalog.NewGormSource(gormDB),
		catalog.NewStaticSource(catalog.DefaultCatalog()),
		appCfg.CatalogTimeout,
	)

	// 6. Сервисы ядра.
	clock := service.SystemClock()
	authSvc := service.NewAuthService(userRepo, loginCodeRepo, mail.LogSender{}, clock)
	accountSvc := service.NewAccountService(userRepo, reservationRepo, accessRepo, clock)
	bookingSvc := service.NewBookingService(reservationRepo, source, userRepo, accessRepo, clock)
	availabilitySvc := service.NewAvailabilityService(source, reservationRepo)

	// 7. HTTP-сервер.
	app := iris.New()
	handler.New(authSvc, accountSvc, bookingSvc, availabilitySvc, buildingRepo).RegisterRoutes(app)

	// 8. Фоновая чистка просроченных кодов входа.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(appCfg.CodeSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if _, err := authSvc.SweepExpiredCodes(sweepCtx); err != nil {
					log.Printf("sweep expired codes: %v", err)
				}
			}
		}
	}()

	// 9. Запускаем сервер в горутине.
	go func() {
		if err := app.Listen(appCfg.HTTPAddr); err != nil {
			log.Printf("http serve: %v", err)
		}
	}()
	log.Printf("reservation API listening on %s", appCfg.HTTPAddr)

	// 10. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
