package store

import (
	"context"
	"fmt"

	"aristobox/internal/livequery"
	"aristobox/internal/models"
	"aristobox/internal/repository"

	"go.uber.org/zap"
)

type Kits struct{ s *Store }

func (k *Kits) Count(ctx context.Context) (int64, error) {
	r, err := k.s.repository()
	if err != nil {
		return 0, err
	}
	return r.Kits.Count(ctx)
}

const (
	minTargetClass = 1
	maxTargetClass = 12
)

// BulkInsert вставляет пачку целиком или не вставляет ничего. Совпадение id
// с существующей записью или внутри пачки даёт ConstraintError, класс вне
// 1..12 даёт InvalidRecordError.
func (k *Kits) BulkInsert(ctx context.Context, kits []models.Kit) error {
	if len(kits) == 0 {
		return nil
	}
	r, err := k.s.repository()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(kits))
	seen := make(map[string]struct{}, len(kits))
	for _, kit := range kits {
		if err := checkKit(kit); err != nil {
			k.s.log.Warn("kits bulk insert rejected", zap.String("id", kit.ID), zap.Error(err))
			return err
		}
		if _, dup := seen[kit.ID]; dup {
			return &ConstraintError{Table: "kits", Key: kit.ID}
		}
		seen[kit.ID] = struct{}{}
		ids = append(ids, kit.ID)
	}

	err = r.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Kits.ExistingIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return &ConstraintError{Table: "kits", Key: existing[0]}
		}
		return tx.Kits.BulkCreate(ctx, kits)
	})
	if err != nil {
		err = translateWriteErr("kits", "", err)
		k.s.log.Error("kits bulk insert failed", zap.Int("count", len(kits)), zap.Error(err))
		return err
	}

	k.s.notify(livequery.Kits)
	return nil
}

func checkKit(kit models.Kit) error {
	for _, c := range kit.TargetClasses {
		if c < minTargetClass || c > maxTargetClass {
			return &InvalidRecordError{
				Table:  "kits",
				Key:    kit.ID,
				Field:  "targetClasses",
				Reason: fmt.Sprintf("class %d out of range %d-%d", c, minTargetClass, maxTargetClass),
			}
		}
	}
	return nil
}

func (k *Kits) Get(ctx context.Context, id string) (*models.Kit, error) {
	r, err := k.s.repository()
	if err != nil {
		return nil, err
	}
	kit, err := r.Kits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, &NotFoundError{Table: "kits", Key: id}
	}
	return kit, nil
}

// ToArray возвращает весь каталог в порядке id.
func (k *Kits) ToArray(ctx context.Context) ([]models.Kit, error) {
	r, err := k.s.repository()
	if err != nil {
		return nil, err
	}
	return r.Kits.List(ctx)
}

// Filter отбирает наборы произвольным предикатом, порядок как у ToArray.
func (k *Kits) Filter(ctx context.Context, pred func(models.Kit) bool) ([]models.Kit, error) {
	all, err := k.ToArray(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Kit, 0, len(all))
	for _, kit := range all {
		if pred(kit) {
			out = append(out, kit)
		}
	}
	return out, nil
}

func (k *Kits) ListActive(ctx context.Context) ([]models.Kit, error) {
	r, err := k.s.repository()
	if err != nil {
		return nil, err
	}
	return r.Kits.ListActive(ctx)
}
