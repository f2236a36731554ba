package store

import (
	"context"
	"errors"
	"sync"

	"aristobox/internal/database"
	"aristobox/internal/livequery"
	"aristobox/internal/migrate"
	"aristobox/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store: локальное хранилище customers/kits/orders. Создаётся явно и
// передаётся потребителям; жизненный цикл Open/Close.
type Store struct {
	cfg database.Config
	log *zap.Logger
	hub *livequery.Hub

	mu   sync.RWMutex
	db   *gorm.DB
	repo *repository.Repository

	Customers *Customers
	Kits      *Kits
	Orders    *Orders
}

func New(cfg database.Config, log *zap.Logger) *Store {
	s := &Store{
		cfg: cfg,
		log: log,
		hub: livequery.NewHub(log),
	}
	s.Customers = &Customers{s: s}
	s.Kits = &Kits{s: s}
	s.Orders = &Orders{s: s}
	return s
}

// Open подключается и применяет схему. Повторный вызов на открытом
// хранилище ничего не делает.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := database.Open(&s.cfg, s.log)
	if err != nil {
		return &InitializationError{Op: "open", Err: err}
	}

	if err := migrate.MigrateStoreDB(ctx, db, s.log, migrate.DefaultMigrateOptions()); err != nil {
		database.CloseDB(db, s.log)
		return &InitializationError{Op: "migrate", Err: err}
	}

	s.db = db
	s.repo = repository.New(db)
	s.log.Info("store opened", zap.String("driver", db.Dialector.Name()))
	return nil
}

// Close завершает все live-подписки и закрывает соединение.
func (s *Store) Close() error {
	s.hub.StopAll()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	database.CloseDB(s.db, s.log)
	s.db = nil
	s.repo = nil
	return nil
}

func (s *Store) Hub() *livequery.Hub { return s.hub }

func (s *Store) repository() (*repository.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil {
		return nil, ErrNotOpen
	}
	return s.repo, nil
}

// View выполняет несколько чтений в одной транзакции, чтобы запрос по
// нескольким таблицам видел согласованное состояние.
func (s *Store) View(ctx context.Context, fn func(r *repository.Repository) error) error {
	r, err := s.repository()
	if err != nil {
		return err
	}
	return r.WithTx(ctx, fn)
}

func (s *Store) notify(tables ...livequery.Table) { s.hub.Notify(tables...) }

func translateWriteErr(table, key string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Table: table, Key: key, Err: err}
	}
	return err
}
