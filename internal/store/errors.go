package store

import (
	"errors"
	"fmt"
)

var (
	ErrInitialization = errors.New("store initialization failed")
	ErrConstraint     = errors.New("constraint violation")
	ErrNotFound       = errors.New("record not found")
	ErrNotOpen        = errors.New("store is not open")
	ErrInvalidRecord  = errors.New("invalid record")
)

// InitializationError: хранилище не открылось или не заполнился каталог.
// Для приложения это фатально.
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("store initialization (%s): %v", e.Op, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

func (e *InitializationError) Is(target error) bool { return target == ErrInitialization }

// ConstraintError: вставка конфликтует по ключу.
type ConstraintError struct {
	Table string
	Key   string
	Err   error
}

func (e *ConstraintError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: duplicate key: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("%s: duplicate key %q", e.Table, e.Key)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

type NotFoundError struct {
	Table string
	Key   any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no record with key %v", e.Table, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidRecordError: запись нарушает инвариант таблицы, в базу ничего не ушло.
type InvalidRecordError struct {
	Table  string
	Key    string
	Field  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("%s %q: %s %s", e.Table, e.Key, e.Field, e.Reason)
}

func (e *InvalidRecordError) Is(target error) bool { return target == ErrInvalidRecord }
