package handlers

import (
	"errors"
	"net/http"

	"github.com/jacfrist/hr-pg/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// statusForBattleError maps the battle error taxonomy to HTTP statuses.
// Conflict signals the caller to refetch state; upstream collaborator
// failures come back as 502 so the client can offer a retry.
func statusForBattleError(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrEmptyAnswer):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSessionNotActive),
		errors.Is(err, services.ErrInvalidTurn),
		errors.Is(err, services.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, services.ErrQuestionSource),
		errors.Is(err, services.ErrGradingService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
