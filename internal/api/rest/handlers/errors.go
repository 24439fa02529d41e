package handlers

import (
	"errors"
	"net/http"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
)

// MissingFieldsMessage is returned for every validation failure
const MissingFieldsMessage = "Todos os campos são obrigatórios."

// StatusFor maps a data-access or validation error to its HTTP status
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func resultFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return metrics.ResultInvalid
	case http.StatusNotFound:
		return metrics.ResultNotFound
	case http.StatusInternalServerError:
		return metrics.ResultDBFailure
	default:
		return metrics.ResultSuccess
	}
}
