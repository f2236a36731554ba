package repository

import (
	"context"
	"errors"

	"aristobox/internal/models"

	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	Updates(ctx context.Context, id uint, fields map[string]any) error
	ListByDateDesc(ctx context.Context) ([]models.Order, error)
	ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) Updates(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(fields).Error
}

func (r *orderRepo) ListByDateDesc(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	// id как второй ключ: заказы с одинаковой датой идут от нового к старому
	err := r.db.WithContext(ctx).Order("order_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *orderRepo) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("order_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *orderRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r *orderRepo) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	return tx.RowsAffected, tx.Error
}
