package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContentHandler handles per-order NFC content HTTP requests.
//
// Routes under /api/content/{orderId}:
//
//	GET    ""                      fetch content
//	POST   "media"                 add media item
//	PUT    "media/{mediaId}"       update media item
//	DELETE "media/{mediaId}"       remove media item
//	PUT    "theme"                 select theme
//	PUT    "customizations"        replace customization map
//	POST   "publish"               freeze and assign NFC URL
type ContentHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service service.ContentService, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger.With().Str("handler", "content").Logger(),
	}
}

// Handle dispatches all /api/content/ routes.
func (h *ContentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/content/")
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	orderID, err := uuid.Parse(segments[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID", h.logger)
		return
	}

	switch {
	case len(segments) == 1:
		h.get(w, r, orderID)

	case segments[1] == "media" && len(segments) == 2:
		h.addMedia(w, r, orderID)

	case segments[1] == "media" && len(segments) == 3:
		mediaID, err := uuid.Parse(segments[2])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid media ID", h.logger)
			return
		}
		h.media(w, r, orderID, mediaID)

	case segments[1] == "theme" && len(segments) == 2:
		h.selectTheme(w, r, orderID)

	case segments[1] == "customizations" && len(segments) == 2:
		h.customizations(w, r, orderID)

	case segments[1] == "publish" && len(segments) == 2:
		h.publish(w, r, orderID)

	default:
		writeError(w, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *ContentHandler) get(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	content, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, content)
}

func (h *ContentHandler) addMedia(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.MediaItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.service.AddMedia(r.Context(), orderID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ContentHandler) media(w http.ResponseWriter, r *http.Request, orderID, mediaID uuid.UUID) {
	switch r.Method {
	case http.MethodPut:
		var req model.MediaItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		if err := h.service.UpdateMedia(r.Context(), orderID, mediaID, &req); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	case http.MethodDelete:
		if err := h.service.RemoveMedia(r.Context(), orderID, mediaID); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *ContentHandler) selectTheme(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req struct {
		ThemeID uuid.UUID `json:"themeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.SelectTheme(r.Context(), orderID, req.ThemeID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ContentHandler) customizations(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateCustomizations(r.Context(), orderID, req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ContentHandler) publish(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	content, err := h.service.Publish(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, content)
}
