package livequery

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("live query closed")

type QueryFunc[T any] func(ctx context.Context) (T, error)

// Live держит последний результат запроса и пересчитывает его после каждой
// записи в таблицы, на которые он подписан.
//
// Если пересчёт упал, остаётся последнее удачное значение, а ошибка доступна
// через Err до следующего успешного пересчёта.
type Live[T any] struct {
	hub   *Hub
	id    uint64
	query QueryFunc[T]
	log   *zap.Logger

	mu    sync.RWMutex
	value T
	ready bool
	err   error

	kick    chan struct{}
	updates chan struct{}
	done    chan struct{}
	cancel  context.CancelFunc
	once    sync.Once
}

// Watch подписывает query на таблицы и сразу запускает первое вычисление.
// Подписка живёт до Close или отмены ctx.
func Watch[T any](ctx context.Context, hub *Hub, query QueryFunc[T], tables ...Table) *Live[T] {
	ctx, cancel := context.WithCancel(ctx)
	l := &Live[T]{
		hub:     hub,
		query:   query,
		log:     hub.log,
		kick:    make(chan struct{}, 1),
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	// подписка раньше первого чтения: запись между ними не потеряется
	l.id = hub.subscribe(tables, l.kick, l.Close)
	l.kick <- struct{}{}

	go l.run(ctx)
	return l
}

func (l *Live[T]) run(ctx context.Context) {
	defer close(l.done)
	defer l.hub.unsubscribe(l.id)

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.kick:
			l.evaluate(ctx)
		}
	}
}

func (l *Live[T]) evaluate(ctx context.Context) {
	v, err := l.query(ctx)
	if ctx.Err() != nil {
		return
	}

	l.mu.Lock()
	if err != nil {
		l.err = err
		l.log.Error("live query evaluation failed", zap.Error(err))
	} else {
		l.value = v
		l.ready = true
		l.err = nil
	}
	l.mu.Unlock()

	select {
	case l.updates <- struct{}{}:
	default:
	}
}

// Value возвращает текущий результат; ok=false, пока первое вычисление не
// завершилось успешно.
func (l *Live[T]) Value() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.ready
}

func (l *Live[T]) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Updates сигналит после каждого пересчёта. Рассчитан на одного читателя.
func (l *Live[T]) Updates() <-chan struct{} { return l.updates }

func (l *Live[T]) Done() <-chan struct{} { return l.done }

// Wait блокируется до первого результата.
func (l *Live[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	for {
		if v, ok := l.Value(); ok {
			return v, nil
		}
		if err := l.Err(); err != nil {
			return zero, err
		}
		select {
		case <-l.updates:
		case <-l.done:
			return zero, ErrClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close отписывает запрос и дожидается остановки. Повторный вызов безопасен.
// Нельзя вызывать изнутри query.
func (l *Live[T]) Close() {
	l.once.Do(l.cancel)
	<-l.done
}
