package handlers

import (
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/report"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	regions   *ui.Regions
	toasts    *ui.Toasts
	lang      *i18n.Store
}

func NewDashboardHandler(dashboard *services.DashboardService, regions *ui.Regions, toasts *ui.Toasts, lang *i18n.Store) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, regions: regions, toasts: toasts, lang: lang}
}

// Load refreshes the dashboard region. The first call after login also warms
// the market location directory.
func (h *DashboardHandler) Load(w http.ResponseWriter, r *http.Request) {
	region := h.regions.Get(ui.RegionDashboard)
	if err := region.Begin(ui.SkeletonDashboard); err != nil {
		writeBusy(w)
		return
	}

	summary, err := h.dashboard.Prime(r.Context())
	if err != nil {
		h.toasts.Show(ui.SeverityError, err.Error())
		region.Fail(err.Error())
		writeRegion(w, http.StatusOK, region, h.toasts)
		return
	}

	if !summary.HasData {
		t := h.lang.Translator()
		region.Complete(report.RenderDashboardWelcome(
			t.T("welcome_title"), t.T("welcome_body"), t.T("welcome_cta")))
		writeRegion(w, http.StatusOK, region, h.toasts)
		return
	}

	region.Complete(report.RenderDashboard(summary, string(h.lang.Lang())))
	writeRegion(w, http.StatusOK, region, h.toasts)
}
