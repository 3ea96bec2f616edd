package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/app"
	"github.com/hairlogy/barber-booking/internal/archive"
	"github.com/hairlogy/barber-booking/internal/config"
	dbpkg "github.com/hairlogy/barber-booking/internal/db"
	"github.com/hairlogy/barber-booking/internal/infra/memstore"
	"github.com/hairlogy/barber-booking/internal/infra/repository"
	"github.com/hairlogy/barber-booking/internal/lock"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/notify"
	"github.com/hairlogy/barber-booking/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := app.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	log.Info("starting api",
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.StorageDriver),
		zap.String("timezone", cfg.Timezone),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	stores, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to init storage", zap.Error(err))
	}
	defer closeStores()

	locker, closeLocker := newLocker(cfg, log)
	defer closeLocker()

	notifier := newNotifier(cfg, log)
	defer func() { _ = notifier.Close() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	container := app.NewContainer(app.Deps{
		Config:   cfg,
		Stores:   stores,
		Locker:   locker,
		Archiver: newArchiver(cfg, log),
		Notifier: notifier,
		Metrics:  metrics.New("barber", reg),
		Log:      log,
	})
	defer container.Close()

	// ======================================================
	// 🌱 STARTUP PASSES
	// ======================================================
	if err := container.Seed.Execute(ctx); err != nil {
		log.Fatal("failed to seed reference data", zap.Error(err))
	}
	if _, err := container.ReconcilePending.Execute(ctx); err != nil {
		log.Error("pending reconciliation failed", zap.Error(err))
	}

	scheduler := app.NewScheduler(container, cfg.RetentionDays, cfg.RetentionHour, cfg.CompletionSweepInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, container, cfg, reg)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", zap.Error(err))
	}

	log.Info("server stopped")
}

// openStores builds the repositories for the configured driver.
func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (app.Stores, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, database, err := dbpkg.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return app.Stores{}, nil, err
		}
		if err := dbpkg.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return app.Stores{}, nil, err
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return app.Stores{
			Bookings:     repository.NewBookingMongoRepository(database),
			ClosedDates:  repository.NewClosedDateMongoRepository(database),
			Reference:    repository.NewReferenceMongoRepository(database),
			DeviceTokens: repository.NewDeviceTokenMongoRepository(database),
			AuditLogs:    repository.NewAuditMongoRepository(database),
		}, closeFn, nil

	case config.DriverMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return app.Stores{
			Bookings:     memstore.NewBookings(),
			ClosedDates:  memstore.NewClosedDates(),
			Reference:    memstore.NewReference(),
			DeviceTokens: memstore.NewDeviceTokens(),
			AuditLogs:    memstore.NewAuditLogs(),
		}, func() {}, nil
	}

	db, err := dbpkg.NewPostgres(cfg.DBUrl, cfg.IsProduction())
	if err != nil {
		return app.Stores{}, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return app.Stores{}, nil, err
	}

	migrator, err := app.NewMigrator(sqlDB, dbpkg.Migrations, "migrations", log)
	if err != nil {
		return app.Stores{}, nil, err
	}
	if err := migrator.Run(ctx); err != nil {
		return app.Stores{}, nil, err
	}

	return app.Stores{
		Bookings:     repository.NewBookingGormRepository(db),
		ClosedDates:  repository.NewClosedDateGormRepository(db),
		Reference:    repository.NewReferenceGormRepository(db),
		DeviceTokens: repository.NewDeviceTokenGormRepository(db),
		AuditLogs:    repository.NewAuditGormRepository(db),
	}, func() { _ = sqlDB.Close() }, nil
}

// newLocker prefers redis. Without it the in-process lock serves a single
// memory-backed instance and the database constraint guards the rest.
func newLocker(cfg *config.Config, log *zap.Logger) (lock.Locker, func()) {
	if cfg.RedisAddr != "" {
		rl, err := lock.NewRedisLock(cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to init redis lock", zap.Error(err))
		}
		return rl, func() { _ = rl.Close() }
	}

	if cfg.StorageDriver == config.DriverMemory {
		return lock.NewLocal(), func() {}
	}
	return lock.Noop{}, func() {}
}

func newArchiver(cfg *config.Config, log *zap.Logger) archive.Archiver {
	if cfg.ArchiveBucket == "" {
		return nil
	}

	log.Info("archiving swept bookings", zap.String("bucket", cfg.ArchiveBucket))
	return archive.NewS3Archiver(archive.S3Config{
		Bucket:          cfg.ArchiveBucket,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
	})
}

func newNotifier(cfg *config.Config, log *zap.Logger) notify.Notifier {
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		return notify.NewKafkaNotifier(brokers, cfg.KafkaReminderTopic, log)
	}
	return notify.NewLogNotifier(log)
}
