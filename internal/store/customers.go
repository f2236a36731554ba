package store

import (
	"context"

	"aristobox/internal/livequery"
	"aristobox/internal/models"
)

type Customers struct{ s *Store }

func (c *Customers) Add(ctx context.Context, cust *models.Customer) (uint, error) {
	r, err := c.s.repository()
	if err != nil {
		return 0, err
	}
	if err := r.Customers.Create(ctx, cust); err != nil {
		return 0, translateWriteErr("customers", "", err)
	}
	c.s.notify(livequery.Customers)
	return cust.ID, nil
}

func (c *Customers) List(ctx context.Context) ([]models.Customer, error) {
	r, err := c.s.repository()
	if err != nil {
		return nil, err
	}
	return r.Customers.List(ctx)
}
