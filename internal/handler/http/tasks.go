package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/utils"
	"github.com/zentask/zentask-server/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, principalID)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Msg("task listing failed")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, tasks, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TaskService.CreateTask(ctx, principalID, request)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Msg("task creation failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", principalID).Int64("task_id", created.ID).Msg("task created")

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid task id in URL")
		writeError(w, r, err)
		return
	}

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TaskService.UpdateTask(ctx, principalID, taskID, request)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Int64("task_id", taskID).Msg("task update failed")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid task id in URL")
		writeError(w, r, err)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, principalID, taskID); err != nil {
		log.Err(err).Int64("user_id", principalID).Int64("task_id", taskID).Msg("task deletion failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", principalID).Int64("task_id", taskID).Msg("task deleted")

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromURL parses the {id} route parameter as a positive int64.
func taskIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		return 0, ErrInvalidTaskID
	}

	return taskID, nil
}
