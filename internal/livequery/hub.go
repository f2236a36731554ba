package livequery

import (
	"sync"

	"go.uber.org/zap"
)

// Table: имя таблицы, на изменения которой можно подписаться.
type Table string

const (
	Customers Table = "customers"
	Kits      Table = "kits"
	Orders    Table = "orders"
)

type subscriber struct {
	tables []Table
	kick   chan struct{}
	stop   func()
}

// Hub раздаёт уведомления о записи подписчикам затронутых таблиц.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*subscriber
	byTbl  map[Table]map[uint64]struct{}
	log    *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs:  make(map[uint64]*subscriber),
		byTbl: make(map[Table]map[uint64]struct{}),
		log:   log,
	}
}

func (h *Hub) subscribe(tables []Table, kick chan struct{}, stop func()) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs[id] = &subscriber{tables: tables, kick: kick, stop: stop}
	for _, t := range tables {
		set, ok := h.byTbl[t]
		if !ok {
			set = make(map[uint64]struct{})
			h.byTbl[t] = set
		}
		set[id] = struct{}{}
	}
	return id
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	for _, t := range sub.tables {
		delete(h.byTbl[t], id)
		if len(h.byTbl[t]) == 0 {
			delete(h.byTbl, t)
		}
	}
}

// Notify будит подписчиков указанных таблиц. Вызывается после коммита записи.
// Повторные уведомления до пересчёта схлопываются в одно.
func (h *Hub) Notify(tables ...Table) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	woken := make(map[uint64]struct{})
	for _, t := range tables {
		for id := range h.byTbl[t] {
			if _, done := woken[id]; done {
				continue
			}
			woken[id] = struct{}{}
			select {
			case h.subs[id].kick <- struct{}{}:
			default:
			}
		}
	}
	if len(woken) > 0 {
		h.log.Debug("live query notify", zap.Any("tables", tables), zap.Int("subscribers", len(woken)))
	}
}

// Subscribers возвращает число активных подписок на таблицу.
func (h *Hub) Subscribers(t Table) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byTbl[t])
}

// StopAll завершает все текущие подписки. Hub остаётся пригодным для новых.
func (h *Hub) StopAll() {
	h.mu.RLock()
	stops := make([]func(), 0, len(h.subs))
	for _, s := range h.subs {
		stops = append(stops, s.stop)
	}
	h.mu.RUnlock()

	for _, stop := range stops {
		stop()
	}
}
