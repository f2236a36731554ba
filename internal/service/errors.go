package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrOrderNotFound   = errors.New("order not found")
	ErrKitNotFound     = errors.New("kit not found")
	ErrKitInactive     = errors.New("kit is not active")
	ErrEmptyItems      = errors.New("empty items")
	ErrQuantityInvalid = errors.New("quantity must be > 0")
	ErrDuplicateKit    = errors.New("kit selected twice")
	ErrInvalidStatus   = errors.New("unknown order status")
	ErrNothingToExport = errors.New("no orders to export")
)

// FieldError: нарушение по конкретному полю формы.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationError возвращается до обращения к хранилищу, когда данные
// формы не прошли проверку.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
