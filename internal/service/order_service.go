package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"aristobox/internal/export"
	"aristobox/internal/filter"
	"aristobox/internal/livequery"
	"aristobox/internal/models"
	"aristobox/internal/status"
	"aristobox/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderTable interface {
	Add(ctx context.Context, o *models.Order) (uint, error)
	Update(ctx context.Context, key uint, patch store.OrderPatch) error
	Get(ctx context.Context, key uint) (*models.Order, error)
	ListByDateDesc(ctx context.Context) ([]models.Order, error)
}

type CatalogCache interface {
	GetKits(ctx context.Context) ([]models.Kit, bool, error)
	SetKits(ctx context.Context, kits []models.Kit) error
}

type Deps struct {
	Orders  OrderTable
	Kits    KitTable
	Hub     *livequery.Hub
	Pricing PricingProvider
	Events  EventBus     // nil: события не публикуются
	Cache   CatalogCache // nil: каталог читается из базы
	Log     *zap.Logger
}

type Options struct {
	// Location для границ дня в фильтре и дат в выгрузке; nil значит time.Local
	Location *time.Location
	// MarkExported переводит выгруженные заказы в exported
	MarkExported bool
}

type orderService struct {
	orders  OrderTable
	kits    KitTable
	hub     *livequery.Hub
	pricing PricingProvider
	events  EventBus
	cache   CatalogCache
	log     *zap.Logger
	opt     Options

	now       func() time.Time
	newSuffix func() string
}

func NewOrderService(d Deps, opt Options) OrderService {
	if opt.Location == nil {
		opt.Location = time.Local
	}
	pricing := d.Pricing
	if pricing == nil {
		pricing = NewCatalogPricing(d.Kits)
	}
	return &orderService{
		orders:    d.Orders,
		kits:      d.Kits,
		hub:       d.Hub,
		pricing:   pricing,
		events:    d.Events,
		cache:     d.Cache,
		log:       d.Log,
		opt:       opt,
		now:       time.Now,
		newSuffix: randomSuffix,
	}
}

// ORD_<unix ms>_<6 hex>; уникальность вероятностная, с базой не сверяется
func newOrderID(now time.Time, suffix string) string {
	return fmt.Sprintf("ORD_%d_%s", now.UnixMilli(), suffix)
}

func randomSuffix() string { return uuid.NewString()[:6] }

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	in.Customer.normalize()
	if err := validateCustomer(in.Customer); err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	var (
		now   = s.now().UTC()
		items = make([]models.OrderItem, 0, len(in.Items))
		seen  = make(map[string]struct{}, len(in.Items))
	)

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, ErrQuantityInvalid
		}
		if _, dup := seen[it.KitID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKit, it.KitID)
		}
		seen[it.KitID] = struct{}{}

		price, err := s.pricing.GetPrice(ctx, it.KitID)
		if err != nil {
			return nil, err
		}

		items = append(items, models.OrderItem{
			KitID:       it.KitID,
			KitName:     price.KitName,
			Quantity:    it.Quantity,
			PricePerKit: price.PricePerKit,
			TotalAmount: price.PricePerKit.Mul(decimal.NewFromInt(int64(it.Quantity))),
			Notes:       it.Notes,
		})
	}

	order := &models.Order{
		OrderID: newOrderID(now, s.newSuffix()),
		CustomerInfo: models.CustomerInfo{
			SchoolName:    in.Customer.SchoolName,
			ContactPerson: in.Customer.ContactPerson,
			Phone:         in.Customer.Phone,
			Area:          in.Customer.Area,
			StudentCount:  in.Customer.StudentCount,
			CreatedAt:     now,
		},
		SelectedKits:    items,
		TotalOrderValue: models.ItemsTotal(items),
		OrderDate:       now,
		Status:          models.OrderStatusPending,
		Signature:       in.Signature,
		Notes:           in.Notes,
	}

	if _, err := s.orders.Add(ctx, order); err != nil {
		s.log.Error("failed to save order", zap.String("order_id", order.OrderID), zap.Error(err))
		return nil, err
	}

	s.log.Info("order saved",
		zap.Uint("key", order.ID),
		zap.String("order_id", order.OrderID),
		zap.String("school", order.CustomerInfo.SchoolName),
		zap.String("total", order.TotalOrderValue.String()),
	)

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, newOrderCreatedEvent(order)); err != nil {
			s.log.Warn("publish order created failed", zap.String("order_id", order.OrderID), zap.Error(err))
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, key uint) (*models.Order, error) {
	ord, err := s.orders.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return nil, err
	}
	return ord, nil
}

// UpdateStatus пишет любой из четырёх статусов, таблицу переходов не
// проверяет: она только для подсказок в интерфейсе.
func (s *orderService) UpdateStatus(ctx context.Context, key uint, to models.OrderStatus) (*models.Order, error) {
	if !status.Valid(to) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	before, err := s.GetOrder(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, key, store.OrderPatch{Status: &to}); err != nil {
		s.log.Error("failed to update status", zap.Uint("key", key), zap.String("status", string(to)), zap.Error(err))
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return nil, err
	}

	if !status.Offered(before.Status, to) && before.Status != to {
		s.log.Debug("status set outside offered transitions",
			zap.Uint("key", key), zap.String("from", string(before.Status)), zap.String("to", string(to)))
	}

	if s.events != nil {
		err := s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			Key:       key,
			OrderID:   before.OrderID,
			From:      before.Status,
			To:        to,
			ChangedAt: s.now(),
		})
		if err != nil {
			s.log.Warn("publish status changed failed", zap.Uint("key", key), zap.Error(err))
		}
	}

	return s.GetOrder(ctx, key)
}

func (s *orderService) NextStatuses(ctx context.Context, key uint) ([]models.OrderStatus, error) {
	ord, err := s.GetOrder(ctx, key)
	if err != nil {
		return nil, err
	}
	return status.Next(ord.Status), nil
}

func (s *orderService) ListOrders(ctx context.Context, spec filter.Spec) (filter.Result, error) {
	all, err := s.orders.ListByDateDesc(ctx)
	if err != nil {
		return filter.Result{}, err
	}
	if spec.Location == nil {
		spec.Location = s.opt.Location
	}
	return filter.Apply(all, spec), nil
}

func (s *orderService) ListKits(ctx context.Context) ([]models.Kit, error) {
	if s.cache != nil {
		kits, ok, err := s.cache.GetKits(ctx)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return kits, nil
		}
	}

	kits, err := s.kits.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetKits(ctx, kits); err != nil {
			s.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return kits, nil
}

// ExportCSV выгружает отфильтрованные заказы. Пустая выборка не выгружается.
func (s *orderService) ExportCSV(ctx context.Context, spec filter.Spec, w io.Writer) (ExportResult, error) {
	res, err := s.ListOrders(ctx, spec)
	if err != nil {
		return ExportResult{}, err
	}
	if res.Total == 0 {
		return ExportResult{}, ErrNothingToExport
	}

	rows, err := export.WriteCSV(w, res.Orders, s.opt.Location)
	if err != nil {
		s.log.Error("csv export failed", zap.Error(err))
		return ExportResult{}, err
	}

	out := ExportResult{
		Filename: export.Filename(s.now().In(s.opt.Location)),
		Rows:     rows,
		Orders:   res.Total,
	}

	if s.opt.MarkExported {
		exported := models.OrderStatusExported
		for _, o := range res.Orders {
			if err := s.orders.Update(ctx, o.ID, store.OrderPatch{Status: &exported}); err != nil {
				s.log.Error("mark exported failed", zap.Uint("key", o.ID), zap.Error(err))
				return out, err
			}
		}
	}

	s.log.Info("orders exported", zap.String("file", out.Filename), zap.Int("orders", out.Orders), zap.Int("rows", out.Rows))
	return out, nil
}

// WatchOrders: живой список всех заказов от новых к старым.
func (s *orderService) WatchOrders(ctx context.Context) *livequery.Live[[]models.Order] {
	return livequery.Watch[[]models.Order](ctx, s.hub, s.orders.ListByDateDesc, livequery.Orders)
}
