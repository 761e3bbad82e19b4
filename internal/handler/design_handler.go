package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/service"

	"github.com/rs/zerolog"
)

// DesignHandler handles custom design order HTTP requests.
type DesignHandler struct {
	service service.DesignService
	logger  zerolog.Logger
}

// NewDesignHandler creates a new design order handler.
func NewDesignHandler(service service.DesignService, logger zerolog.Logger) *DesignHandler {
	return &DesignHandler{
		service: service,
		logger:  logger.With().Str("handler", "design").Logger(),
	}
}

// Handle dispatches /api/design-orders: POST submits, GET lists the
// caller's design orders.
func (h *DesignHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req model.DesignOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		order, err := h.service.Submit(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, order)

	case http.MethodGet:
		orders, err := h.service.ListByUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		if orders == nil {
			orders = []model.DesignOrder{}
		}
		writeJSON(w, http.StatusOK, orders)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// ListAll handles GET /api/admin/design-orders requests.
func (h *DesignHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if orders == nil {
		orders = []model.DesignOrder{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// AdminUpdate handles PUT /api/admin/design-orders/{id} requests for
// pricing and status changes.
func (h *DesignHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/admin/design-orders/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid design order ID", h.logger)
		return
	}

	var req model.DesignOrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
