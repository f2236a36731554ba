package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB        *gorm.DB
	Customers CustomerRepo
	Kits      KitRepo
	Orders    OrderRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:        db,
		Customers: NewCustomerRepo(db),
		Kits:      NewKitRepo(db),
		Orders:    NewOrderRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// WithTx выполняет fn в одной транзакции. Внутри fn работать только через tx,
// иначе на sqlite (одно соединение) будет взаимная блокировка.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
