package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aristobox/config"
	"aristobox/internal/cache"
	"aristobox/internal/logger"
	"aristobox/internal/producer"
	"aristobox/internal/scheduler"
	"aristobox/internal/seed"
	"aristobox/internal/service"
	"aristobox/internal/store"
	httptransport "aristobox/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(cfg.DB.Config, log)
	if err := seed.Ready(ctx, st, log); err != nil {
		log.Fatal("Хранилище не готово", zap.Error(err))
	}
	defer st.Close()

	deps := service.Deps{
		Orders: st.Orders,
		Kits:   st.Kits,
		Hub:    st.Hub(),
		Log:    log,
	}

	// Event bus is optional (nil disables publishing)
	if cfg.Kafka.Enabled() {
		events := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer events.Close()
		deps.Events = events
		log.Info("Kafka producer enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, log)
		if err != nil {
			log.Warn("catalog cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			// каталог мог смениться между запусками
			if err := rc.InvalidateKits(ctx); err != nil {
				log.Warn("catalog cache invalidate failed", zap.Error(err))
			}
			deps.Cache = rc
		}
	}

	svc := service.NewOrderService(deps, service.Options{
		Location:     cfg.Location,
		MarkExported: cfg.Export.MarkExported,
	})

	if cfg.Export.Interval > 0 {
		sched := scheduler.NewScheduler(svc, cfg.Export.Dir, cfg.Export.Interval, log)
		sched.Start(ctx)
		defer sched.Stop()
	}

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httptransport.Router(svc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
