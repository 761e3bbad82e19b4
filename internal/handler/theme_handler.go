package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/service"

	"github.com/rs/zerolog"
)

// ThemeHandler handles theme catalogue HTTP requests.
type ThemeHandler struct {
	service service.ThemeService
	logger  zerolog.Logger
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(service service.ThemeService, logger zerolog.Logger) *ThemeHandler {
	return &ThemeHandler{
		service: service,
		logger:  logger.With().Str("handler", "theme").Logger(),
	}
}

// GetAll handles GET /api/themes requests.
func (h *ThemeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	themes, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if themes == nil {
		themes = []model.Theme{}
	}

	writeJSON(w, http.StatusOK, themes)
}

// GetByID handles GET /api/themes/{id} requests.
func (h *ThemeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := pathID(r, "/api/themes/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme ID", h.logger)
		return
	}

	theme, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, theme)
}

// Create handles POST /api/admin/themes requests.
func (h *ThemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	theme, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, theme)
}

// Update handles PUT /api/admin/themes/{id} requests.
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/admin/themes/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme ID", h.logger)
		return
	}

	var req model.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	theme, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, theme)
}

// Delete handles DELETE /api/admin/themes/{id} requests.
func (h *ThemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/admin/themes/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
