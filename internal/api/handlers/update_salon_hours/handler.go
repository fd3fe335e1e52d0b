package update_salon_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	hoursService "github.com/m04kA/SBM-BookingService/internal/service/hours"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgAccessDenied       = "изменять расписание может только менеджер салона"
	msgInvalidWindows     = "некорректный набор окон рабочих часов"
	msgInvalidWeekday     = "день недели должен быть в диапазоне 0-6"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	salonIDStr := mux.Vars(r)["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req ReplaceWeekdayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ReplaceWeekday(r.Context(), req.ToServiceRequest(salonID, userID)); err != nil {
		switch {
		case errors.Is(err, hoursService.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, hoursService.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/hours - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, hoursService.ErrInvalidWindows):
			h.logger.Warn("PUT /salons/{id}/hours - Invalid windows: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidWindows)

		case errors.Is(err, hoursService.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/hours - Invalid weekday: salon_id=%d, weekday=%d", salonID, req.Weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		default:
			h.logger.Error("PUT /salons/{id}/hours - Failed to replace schedule: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/hours - Schedule replaced successfully: salon_id=%d, weekday=%d, windows=%d",
		salonID, req.Weekday, len(req.Windows))
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
