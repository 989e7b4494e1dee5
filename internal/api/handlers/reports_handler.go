package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/report"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type ReportsHandler struct {
	reports *services.ReportsService
	regions *ui.Regions
	toasts  *ui.Toasts
	lang    *i18n.Store
}

func NewReportsHandler(reports *services.ReportsService, regions *ui.Regions, toasts *ui.Toasts, lang *i18n.Store) *ReportsHandler {
	return &ReportsHandler{reports: reports, regions: regions, toasts: toasts, lang: lang}
}

func reportActions() report.ListActions {
	return report.ListActions{
		ViewURL:   func(id int64) string { return fmt.Sprintf("/ui/reports/%d", id) },
		DeleteURL: func(id int64) string { return fmt.Sprintf("/api/reports/%d", id) },
	}
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	region := h.regions.Get(ui.RegionReports)
	if err := region.Begin(ui.SkeletonGeneric); err != nil {
		writeBusy(w)
		return
	}

	h.renderList(r, region)
	writeRegion(w, http.StatusOK, region, h.toasts)
}

// View resolves a saved report from the listed cache and returns the full
// rendered report without touching the save slot.
func (h *ReportsHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	fieldReport, lang, err := h.reports.View(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"content": string(report.RenderFieldReport(fieldReport, lang)),
	})
}

func (h *ReportsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	ack, err := h.reports.Delete(r.Context(), id)
	if err != nil {
		h.toasts.Show(ui.SeverityError, err.Error())
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"error":   err.Error(),
			"toasts":  h.toasts.Active(),
		})
		return
	}

	h.toasts.Show(ui.SeveritySuccess, ack.Message)

	// The list reflects the deletion immediately.
	region := h.regions.Get(ui.RegionReports)
	if err := region.Begin(ui.SkeletonGeneric); err == nil {
		h.renderList(r, region)
	}
	writeRegion(w, http.StatusOK, region, h.toasts)
}

func (h *ReportsHandler) PlanOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.reports.PlanOptions(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": options})
}

type planRequest struct {
	ReportID int64 `json:"report_id"`
}

func (h *ReportsHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	region := h.regions.Get(ui.RegionFertilizer)
	if err := region.Begin(ui.SkeletonGeneric); err != nil {
		writeBusy(w)
		return
	}

	plan, err := h.reports.Plan(r.Context(), req.ReportID)
	if err != nil {
		if services.IsValidation(err) {
			h.toasts.Show(ui.SeverityWarning, err.Error())
			region.Reset()
		} else {
			h.toasts.Show(ui.SeverityError, err.Error())
			region.Fail(err.Error())
		}
		writeRegion(w, statusFor(err), region, h.toasts)
		return
	}

	region.Complete(report.RenderFertilizerPlan(plan))
	writeRegion(w, http.StatusOK, region, h.toasts)
}

func (h *ReportsHandler) renderList(r *http.Request, region *ui.Region) {
	reports, err := h.reports.List(r.Context())
	if err != nil {
		region.Fail(err.Error())
		return
	}
	t := h.lang.Translator()
	region.Complete(report.RenderSavedReports(reports, reportActions(), t.T("view_btn"), t.T("delete_btn")))
}
