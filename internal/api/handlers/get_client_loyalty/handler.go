package get_client_loyalty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	loyaltyService "github.com/m04kA/SBM-BookingService/internal/service/loyalty"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidSalonID  = "некорректный ID салона"
	msgSalonNotFound   = "салон не найден"
	msgAccessDenied    = "бонусный баланс доступен только его владельцу"
)

type Handler struct {
	service LoyaltyService
	logger  Logger
}

func NewHandler(service LoyaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/loyalty?salonId={salonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	clientIDStr := mux.Vars(r)["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/loyalty - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	salonID, err := strconv.ParseInt(r.URL.Query().Get("salonId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/loyalty - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetBalance(r.Context(), clientID, salonID, userID)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyService.ErrSalonNotFound):
			h.logger.Warn("GET /clients/{id}/loyalty - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, loyaltyService.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/loyalty - Access denied: client_id=%d, user_id=%d", clientID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /clients/{id}/loyalty - Failed to get balance: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/loyalty - Balance retrieved successfully: client_id=%d, salon_id=%d, balance=%d",
		clientID, salonID, result.Balance)
	handlers.RespondJSON(w, http.StatusOK, result)
}
