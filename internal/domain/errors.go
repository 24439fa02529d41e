package domain

import (
	"errors"
	"fmt"
)

// Application errors
var (
	// ErrValidation обязательные поля отсутствуют
	ErrValidation = errors.New("validation failed")

	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("record not found")

	// ErrDatabase ошибка базы данных
	ErrDatabase = errors.New("database failure")
)

// DatabaseError wraps a driver or connectivity error raised while running one statement
type DatabaseError struct {
	Op          string
	Table       string
	OriginalErr error
}

// Error реализует интерфейс error
func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error [%s %s]: %v", e.Op, e.Table, e.OriginalErr)
}

// Unwrap возвращает оригинальную ошибку
func (e *DatabaseError) Unwrap() error {
	return e.OriginalErr
}

// Is makes every DatabaseError match ErrDatabase
func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// NewDatabaseError создает новую ошибку базы данных
func NewDatabaseError(op, table string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Table: table, OriginalErr: err}
}

// ValidationError carries the fields that failed the presence check
type ValidationError struct {
	Fields      []string
	OriginalErr error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %v", e.OriginalErr)
	}
	return fmt.Sprintf("validation failed: missing %v", e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return e.OriginalErr
}

// Is makes every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
