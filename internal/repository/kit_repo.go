package repository

import (
	"context"
	"errors"

	"aristobox/internal/models"

	"gorm.io/gorm"
)

type KitRepo interface {
	Count(ctx context.Context) (int64, error)
	BulkCreate(ctx context.Context, kits []models.Kit) error
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.Kit, error)
	List(ctx context.Context) ([]models.Kit, error)
	ListActive(ctx context.Context) ([]models.Kit, error)
	ListByCategory(ctx context.Context, c models.KitCategory) ([]models.Kit, error)
}

type kitRepo struct{ db *gorm.DB }

func NewKitRepo(db *gorm.DB) KitRepo { return &kitRepo{db: db} }

func (r *kitRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Kit{}).Count(&n).Error
	return n, err
}

func (r *kitRepo) BulkCreate(ctx context.Context, kits []models.Kit) error {
	if len(kits) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&kits).Error
}

func (r *kitRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []string
	err := r.db.WithContext(ctx).Model(&models.Kit{}).Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error
	return found, err
}

func (r *kitRepo) GetByID(ctx context.Context, id string) (*models.Kit, error) {
	var kit models.Kit
	err := r.db.WithContext(ctx).First(&kit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &kit, err
}

func (r *kitRepo) List(ctx context.Context) ([]models.Kit, error) {
	var kits []models.Kit
	err := r.db.WithContext(ctx).Order("id ASC").Find(&kits).Error
	return kits, err
}

func (r *kitRepo) ListActive(ctx context.Context) ([]models.Kit, error) {
	var kits []models.Kit
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("kit_name ASC").Find(&kits).Error
	return kits, err
}

func (r *kitRepo) ListByCategory(ctx context.Context, c models.KitCategory) ([]models.Kit, error) {
	var kits []models.Kit
	err := r.db.WithContext(ctx).Where("category = ?", c).Order("price ASC, id ASC").Find(&kits).Error
	return kits, err
}
