package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/notify"
	"github.com/portfolio/internal/router"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("portfolio failed: %v", err)
	}
}

func run() error {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLog := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer appLog.Sync()

	gdb, err := db.Open(db.Options{Path: cfg.DatabasePath, ProfileName: cfg.ProfileName, Silent: cfg.LogLevel != "debug"})
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.EnsureUser(gdb, cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		return err
	}

	seoDefaults, err := service.LoadSeoDefaults(cfg.SeoDefaultsFile)
	if err != nil {
		return err
	}

	blobs, err := buildBlobStore(cfg)
	if err != nil {
		return err
	}

	api := handler.NewAPI(gdb, handler.Options{
		Blobs:            blobs,
		Notifier:         buildNotifier(cfg, appLog),
		Logger:           appLog,
		SeoDefaults:      seoDefaults,
		NoticeDismiss:    cfg.NoticeDismissAfter,
		LoginMaxAttempts: cfg.LoginMaxAttempts,
		LoginWindow:      cfg.LoginWindow,
	})

	uploadDir := ""
	if local, ok := blobs.(*storage.LocalStore); ok {
		uploadDir = local.Dir()
	}
	engine := router.SetupRouter(api, router.Options{
		SessionSecret:  cfg.SessionSecret,
		UploadDir:      uploadDir,
		UploadURLPath:  cfg.UploadURLPath,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         appLog,
	})

	srv := router.NewServer(cfg.ListenAddr, engine, appLog)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case sig := <-stop:
		appLog.Info("shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		appLog.Error("graceful shutdown failed", logger.Error(err))
	}
	api.Drain()
	return nil
}

func buildBlobStore(cfg config.AppConfig) (storage.BlobStore, error) {
	if cfg.BlobBackend == config.BlobBackendUploadThing {
		store, err := storage.NewUploadThingStore(cfg.UploadThingToken)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath), nil
}

func buildNotifier(cfg config.AppConfig, appLog logger.Logger) notify.Notifier {
	if !cfg.TelegramEnabled() {
		appLog.Info("contact notifications disabled")
		return notify.Nop{}
	}
	return notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
}
