package main

import (
	"context"
	"os"

	"aristobox/config"
	"aristobox/internal/logger"
	"aristobox/internal/seed"
	"aristobox/internal/store"

	"go.uber.org/zap"

	"github.com/joho/godotenv"
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

	ctx := context.Background()

	// Open применяет схему, Catalog заполняет пустую таблицу kits
	st := store.New(cfg.DB.Config, log)
	if err := seed.Ready(ctx, st, log); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.Error(err))
	}
	defer st.Close()

	log.Info("Миграция успешно завершена")
}
