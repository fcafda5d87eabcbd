package http

import (
	"errors"
	"net/http"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/service"
	"github.com/zentask/zentask-server/internal/store"
	"github.com/zentask/zentask-server/internal/utils"
	"github.com/zentask/zentask-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTaskAccessDenied:        http.StatusForbidden,

	ErrInvalidTaskID: http.StatusBadRequest,

	store.ErrEmailAlreadyRegistered: http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrTaskNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto an HTTP status and sends a JSON error body.
// Internal errors are masked with the generic status text so that driver and
// SQL details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
