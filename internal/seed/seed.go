package seed

import (
	"context"

	"aristobox/internal/models"
	"aristobox/internal/store"

	"go.uber.org/zap"
)

type KitTable interface {
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, kits []models.Kit) error
}

// Catalog заполняет пустую таблицу kits каталогом по умолчанию.
// Если наборы уже есть, ничего не пишет.
func Catalog(ctx context.Context, kits KitTable, log *zap.Logger) error {
	n, err := kits.Count(ctx)
	if err != nil {
		log.Error("Не удалось посчитать наборы", zap.Error(err))
		return &store.InitializationError{Op: "seed", Err: err}
	}
	if n > 0 {
		log.Debug("Каталог уже заполнен", zap.Int64("kits", n))
		return nil
	}

	catalog := DefaultKits()
	if err := kits.BulkInsert(ctx, catalog); err != nil {
		log.Error("Не удалось заполнить каталог", zap.Error(err))
		return &store.InitializationError{Op: "seed", Err: err}
	}

	log.Info("Каталог наборов заполнен", zap.Int("kits", len(catalog)))
	return nil
}

// Ready открывает хранилище и заполняет каталог. Любая ошибка здесь
// означает, что приложение не готово к работе.
func Ready(ctx context.Context, st *store.Store, log *zap.Logger) error {
	if err := st.Open(ctx); err != nil {
		return err
	}
	return Catalog(ctx, st.Kits, log)
}
