package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

// UIHandler exposes the interaction state (toasts, regions, sections) to the
// surface.
type UIHandler struct {
	regions  *ui.Regions
	toasts   *ui.Toasts
	sections *ui.Sections
}

func NewUIHandler(regions *ui.Regions, toasts *ui.Toasts, sections *ui.Sections) *UIHandler {
	return &UIHandler{regions: regions, toasts: toasts, sections: sections}
}

func (h *UIHandler) Toasts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"toasts":        h.toasts.Active(),
		"dismiss_after": ui.DismissAfter.Milliseconds(),
	})
}

func (h *UIHandler) DismissToast(w http.ResponseWriter, r *http.Request) {
	h.toasts.Dismiss(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *UIHandler) Region(w http.ResponseWriter, r *http.Request) {
	region := h.regions.Get(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, viewOf(region.Snapshot()))
}

type sectionRequest struct {
	Section string `json:"section"`
}

func (h *UIHandler) ShowSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	h.sections.Show(req.Section)
	writeJSON(w, http.StatusOK, map[string]string{"active": h.sections.Active()})
}
