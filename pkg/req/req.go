package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Decode декодирует JSON из io.Reader в структуру типа T.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, io.EOF
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// IsValid валидирует структуру типа T.
func IsValid[T any](payload T) error {
	return instance().Struct(payload)
}

// HandleBody decodes and validates a request body. Any failure is returned as a
// *domain.ValidationError so callers answer it the same way as a missing field.
func HandleBody[T any](body io.Reader) (*T, error) {
	payload, err := Decode[T](body)
	if err != nil {
		return nil, &domain.ValidationError{OriginalErr: fmt.Errorf("decode body: %w", err)}
	}

	if err := IsValid(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field())
			}
			return nil, &domain.ValidationError{Fields: fields, OriginalErr: err}
		}
		return nil, &domain.ValidationError{OriginalErr: err}
	}
	return &payload, nil
}
