package service

import (
	"context"
	"errors"
	"fmt"

	"aristobox/internal/models"
	"aristobox/internal/store"

	"github.com/shopspring/decimal"
)

type Price struct {
	KitName     string
	PricePerKit decimal.Decimal
}

type PricingProvider interface {
	GetPrice(ctx context.Context, kitID string) (Price, error)
}

type KitTable interface {
	Get(ctx context.Context, id string) (*models.Kit, error)
	ListActive(ctx context.Context) ([]models.Kit, error)
}

// CatalogPricing берёт цену и название из таблицы kits на момент заказа.
type CatalogPricing struct {
	kits KitTable
}

func NewCatalogPricing(kits KitTable) PricingProvider {
	return &CatalogPricing{kits: kits}
}

func (p *CatalogPricing) GetPrice(ctx context.Context, kitID string) (Price, error) {
	kit, err := p.kits.Get(ctx, kitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Price{}, fmt.Errorf("%w: %s", ErrKitNotFound, kitID)
		}
		return Price{}, err
	}
	if !kit.IsActive {
		return Price{}, fmt.Errorf("%w: %s", ErrKitInactive, kitID)
	}
	return Price{KitName: kit.KitName, PricePerKit: kit.Price}, nil
}
