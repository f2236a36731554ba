package store

import (
	"context"
	"errors"

	"aristobox/internal/livequery"
	"aristobox/internal/models"
	"aristobox/internal/repository"

	"go.uber.org/zap"
)

var errOrderKeySet = errors.New("order key is assigned by the store")

// OrderPatch: частичное обновление заказа, nil-поля не трогаются.
// Переходы статусов здесь не проверяются: допустим любой из четырёх.
type OrderPatch struct {
	Status    *models.OrderStatus
	Signature *string
	Notes     *string
}

func (p OrderPatch) fields() map[string]any {
	upd := map[string]any{}
	if p.Status != nil {
		upd["status"] = *p.Status
	}
	if p.Signature != nil {
		upd["signature"] = *p.Signature
	}
	if p.Notes != nil {
		upd["notes"] = *p.Notes
	}
	return upd
}

type Orders struct{ s *Store }

// Add сохраняет заказ одной вставкой и возвращает новый ключ.
func (o *Orders) Add(ctx context.Context, ord *models.Order) (uint, error) {
	if ord.ID != 0 {
		return 0, errOrderKeySet
	}
	r, err := o.s.repository()
	if err != nil {
		return 0, err
	}
	if err := r.Orders.Create(ctx, ord); err != nil {
		err = translateWriteErr("orders", ord.OrderID, err)
		o.s.log.Error("order insert failed", zap.String("order_id", ord.OrderID), zap.Error(err))
		return 0, err
	}

	o.s.notify(livequery.Orders)
	return ord.ID, nil
}

func (o *Orders) Update(ctx context.Context, key uint, patch OrderPatch) error {
	r, err := o.s.repository()
	if err != nil {
		return err
	}

	err = r.WithTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.Orders.Exists(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Table: "orders", Key: key}
		}
		return tx.Orders.Updates(ctx, key, patch.fields())
	})
	if err != nil {
		o.s.log.Error("order update failed", zap.Uint("key", key), zap.Error(err))
		return err
	}

	o.s.notify(livequery.Orders)
	return nil
}

func (o *Orders) Get(ctx context.Context, key uint) (*models.Order, error) {
	r, err := o.s.repository()
	if err != nil {
		return nil, err
	}
	ord, err := r.Orders.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, &NotFoundError{Table: "orders", Key: key}
	}
	return ord, nil
}

// ListByDateDesc: все заказы от новых к старым.
func (o *Orders) ListByDateDesc(ctx context.Context) ([]models.Order, error) {
	r, err := o.s.repository()
	if err != nil {
		return nil, err
	}
	return r.Orders.ListByDateDesc(ctx)
}

func (o *Orders) Delete(ctx context.Context, key uint) error {
	r, err := o.s.repository()
	if err != nil {
		return err
	}
	n, err := r.Orders.Delete(ctx, key)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Table: "orders", Key: key}
	}

	o.s.notify(livequery.Orders)
	return nil
}
