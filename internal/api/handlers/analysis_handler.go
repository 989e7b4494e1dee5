package handlers

import (
	"io"
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/report"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

// maxUploadBytes caps analysis image uploads.
const maxUploadBytes = 16 << 20

type AnalysisHandler struct {
	analysis *services.AnalysisService
	regions  *ui.Regions
	toasts   *ui.Toasts
	lang     *i18n.Store
}

func NewAnalysisHandler(analysis *services.AnalysisService, regions *ui.Regions, toasts *ui.Toasts, lang *i18n.Store) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, regions: regions, toasts: toasts, lang: lang}
}

// Preview returns an inline preview fragment for a picked image without
// calling the backend.
func (h *AnalysisHandler) Preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"content": string(ui.PreviewImage(data)),
	})
}

func (h *AnalysisHandler) AnalyzeCrop(w http.ResponseWriter, r *http.Request) {
	region := h.regions.Get(ui.RegionCrop)
	if err := region.Begin(ui.SkeletonGeneric); err != nil {
		writeBusy(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	var (
		image    io.Reader
		filename string
	)
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = file
		filename = header.Filename
	}

	result, err := h.analysis.AnalyzeCrop(r.Context(), filename, image)
	if err != nil {
		h.regionFailure(region, err)
		writeRegion(w, statusFor(err), region, h.toasts)
		return
	}

	region.Complete(report.RenderCropAnalysis(result))
	writeRegion(w, http.StatusOK, region, h.toasts)
}

func (h *AnalysisHandler) AnalyzeField(w http.ResponseWriter, r *http.Request) {
	region := h.regions.Get(ui.RegionField)
	if err := region.Begin(ui.SkeletonGeneric); err != nil {
		writeBusy(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	latitude := r.FormValue("latitude")
	longitude := r.FormValue("longitude")
	lastCrop := r.FormValue("last_crop")

	var (
		image    io.Reader
		filename string
	)
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = file
		filename = header.Filename
	}

	result, err := h.analysis.AnalyzeField(r.Context(), latitude, longitude, lastCrop, filename, image)
	if err != nil {
		h.regionFailure(region, err)
		writeRegion(w, statusFor(err), region, h.toasts)
		return
	}

	region.Complete(report.RenderFieldReport(result, string(h.lang.Lang())))
	writeJSON(w, http.StatusOK, regionResponse{
		Region: viewOf(region.Snapshot()),
		Toasts: h.toasts.Active(),
		Extra:  map[string]bool{"can_save": h.analysis.HasPendingReport()},
	})
}

// SaveReport persists the report held from the last field analysis.
func (h *AnalysisHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	ack, err := h.analysis.SaveReport(r.Context())
	if err != nil {
		if services.IsValidation(err) {
			h.toasts.Show(ui.SeverityWarning, err.Error())
		} else {
			h.toasts.Show(ui.SeverityError, err.Error())
		}
		writeJSON(w, statusFor(err), map[string]any{
			"success": false,
			"error":   err.Error(),
			"toasts":  h.toasts.Active(),
		})
		return
	}

	h.toasts.Show(ui.SeveritySuccess, ack.Message)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  ack.Message,
		"can_save": h.analysis.HasPendingReport(),
		"toasts":   h.toasts.Active(),
	})
}

// regionFailure resets the region on validation errors so the skeleton never
// lingers after a rejected form, and fails it on backend errors.
func (h *AnalysisHandler) regionFailure(region *ui.Region, err error) {
	if services.IsValidation(err) {
		h.toasts.Show(ui.SeverityWarning, err.Error())
		region.Reset()
		return
	}
	h.toasts.Show(ui.SeverityError, err.Error())
	region.Fail(err.Error())
}

func statusFor(err error) int {
	if services.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
