package migrate

import (
	"context"

	"aristobox/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateChecks  bool // CHECK-ограничения (статус, цена, число учеников)
	CreateIndexes bool // составные индексы поверх тегов
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateChecks:  true,
		CreateIndexes: true,
	}
}

type constraintRef struct {
	model any
	name  string
}

var checks = []constraintRef{
	{&models.Order{}, "chk_orders_status_allowed"},
	{&models.Kit{}, "chk_kits_price_positive"},
	{&models.Customer{}, "chk_customers_student_count"},
}

var indexes = []constraintRef{
	{&models.Order{}, "ix_orders_status_date"},
}

// MigrateStoreDB создаёт таблицы customers, kits и orders. Схема только
// дополняется: AutoMigrate не удаляет колонки.
func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных заказов", zap.String("dialect", db.Dialector.Name()))

	db = db.WithContext(ctx)

	log.Info("Создание таблиц customers, kits и orders")
	if err := db.AutoMigrate(&models.Customer{}, &models.Kit{}, &models.Order{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	m := db.Migrator()

	if opt.CreateChecks {
		log.Info("Проверка CHECK-ограничений")
		for _, c := range checks {
			if m.HasConstraint(c.model, c.name) {
				continue
			}
			if err := m.CreateConstraint(c.model, c.name); err != nil {
				log.Error("Не удалось создать CHECK", zap.String("name", c.name), zap.Error(err))
				return err
			}
			log.Info("CHECK создан", zap.String("name", c.name))
		}
	}

	if opt.CreateIndexes {
		log.Info("Проверка индексов")
		for _, ix := range indexes {
			if m.HasIndex(ix.model, ix.name) {
				continue
			}
			if err := m.CreateIndex(ix.model, ix.name); err != nil {
				log.Error("Не удалось создать индекс", zap.String("name", ix.name), zap.Error(err))
				return err
			}
			log.Info("Индекс создан", zap.String("name", ix.name))
		}
	}

	log.Info("Миграция базы данных заказов успешно завершена")
	return nil
}
