package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

// regionView is the wire form of a region transition handed to the surface.
type regionView struct {
	Region     string `json:"region"`
	State      string `json:"state"`
	Content    string `json:"content"`
	Error      string `json:"error,omitempty"`
	FadeMillis int    `json:"fade_millis"`
}

func viewOf(ev ui.Event) regionView {
	return regionView{
		Region:     ev.Region,
		State:      ev.State.String(),
		Content:    string(ev.Content),
		Error:      ev.Err,
		FadeMillis: ui.FadeMillis,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeBusy(w http.ResponseWriter) {
	writeError(w, http.StatusConflict, "An operation is already in progress.")
}

// regionResponse pairs the region's new state with any toasts the operation
// raised so the surface can draw both from one response.
type regionResponse struct {
	Region regionView `json:"region"`
	Toasts []ui.Toast `json:"toasts"`
	Extra  any        `json:"extra,omitempty"`
}

func writeRegion(w http.ResponseWriter, status int, region *ui.Region, toasts *ui.Toasts) {
	writeJSON(w, status, regionResponse{
		Region: viewOf(region.Snapshot()),
		Toasts: toasts.Active(),
	})
}
