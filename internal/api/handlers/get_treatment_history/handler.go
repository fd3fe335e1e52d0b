package get_treatment_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	historyService "github.com/m04kA/SBM-BookingService/internal/service/history"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgAccessDenied    = "история процедур доступна только ее владельцу"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/treatment-history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	clientIDStr := mux.Vars(r)["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/treatment-history - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetTreatmentHistory(r.Context(), clientID, userID)
	if err != nil {
		switch {
		case errors.Is(err, historyService.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/treatment-history - Access denied: client_id=%d, user_id=%d", clientID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /clients/{id}/treatment-history - Failed to get history: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/treatment-history - History retrieved successfully: client_id=%d, visits=%d",
		clientID, result.TotalVisits)
	handlers.RespondJSON(w, http.StatusOK, result)
}
