package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type LanguageHandler struct {
	lang     *i18n.Store
	sections *ui.Sections
}

func NewLanguageHandler(lang *i18n.Store, sections *ui.Sections) *LanguageHandler {
	return &LanguageHandler{lang: lang, sections: sections}
}

// Get returns the active language and its full string table so the surface
// can retranslate in one pass.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	t := h.lang.Translator()
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":    string(t.Lang()),
		"strings": t.Table(),
	})
}

type languageRequest struct {
	Lang string `json:"lang"`
}

// Set switches the language, persists the choice, and tells the surface
// whether the dashboard needs a reload in the new language.
func (h *LanguageHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	applied := h.lang.SetLanguage(r.Context(), req.Lang)
	t := h.lang.Translator()
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":             string(applied),
		"strings":          t.Table(),
		"reload_dashboard": h.sections.Active() == ui.SectionDashboard,
	})
}
