package repository

import (
	"context"

	"aristobox/internal/models"

	"gorm.io/gorm"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	List(ctx context.Context) ([]models.Customer, error)
	FindByPhone(ctx context.Context, phone string) ([]models.Customer, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) List(ctx context.Context) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *customerRepo) FindByPhone(ctx context.Context, phone string) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).Order("created_at DESC").Find(&list).Error
	return list, err
}
