package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"aristobox/internal/filter"
	"aristobox/internal/service"

	"go.uber.org/zap"
)

type Exporter interface {
	ExportCSV(ctx context.Context, spec filter.Spec, w io.Writer) (service.ExportResult, error)
}

// Scheduler периодически сохраняет полную выгрузку заказов в каталог dir.
type Scheduler struct {
	exporter Exporter
	dir      string
	interval time.Duration
	log      *zap.Logger
	stopCh   chan struct{}
}

func NewScheduler(exporter Exporter, dir string, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		exporter: exporter,
		dir:      dir,
		interval: interval,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Start запускает планировщик
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("starting export scheduler", zap.String("dir", s.dir), zap.Duration("interval", s.interval))
	go s.runExport(ctx)
}

// Stop останавливает планировщик
func (s *Scheduler) Stop() {
	s.log.Info("stopping export scheduler")
	close(s.stopCh)
}

func (s *Scheduler) runExport(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Выполняем сразу при старте
	if _, err := s.RunOnceNow(ctx); err != nil {
		s.log.Error("initial scheduled export failed", zap.Error(err))
	}

	for {
		select {
		case <-ticker.C:
			if _, err := s.RunOnceNow(ctx); err != nil {
				s.log.Error("scheduled export failed", zap.Error(err))
			}
		case <-s.stopCh:
			s.log.Info("export scheduler stopped")
			return
		case <-ctx.Done():
			s.log.Info("export scheduler cancelled")
			return
		}
	}
}

// RunOnceNow пишет выгрузку всех заказов немедленно. Пустую выборку
// пропускает без ошибки и возвращает пустой путь.
func (s *Scheduler) RunOnceNow(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".export-*.csv")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	res, err := s.exporter.ExportCSV(ctx, filter.Spec{}, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, service.ErrNothingToExport) {
		s.log.Debug("nothing to export")
		return "", nil
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, res.Filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	s.log.Info("scheduled export written", zap.String("path", path), zap.Int("orders", res.Orders))
	return path, nil
}
