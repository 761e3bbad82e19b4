package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles server-side cart HTTP requests. All routes require a
// customer bearer token.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Handle dispatches /api/cart by method: GET fetches, PUT syncs, DELETE clears.
func (h *CartHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	switch r.Method {
	case http.MethodGet:
		cart, err := h.service.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	case http.MethodPut:
		var req model.CartSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		cart, err := h.service.Sync(r.Context(), userID, req.Items)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	case http.MethodDelete:
		if err := h.service.Clear(r.Context(), userID); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
