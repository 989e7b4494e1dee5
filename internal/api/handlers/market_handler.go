package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/report"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type MarketHandler struct {
	market  *services.MarketService
	regions *ui.Regions
	toasts  *ui.Toasts
}

func NewMarketHandler(market *services.MarketService, regions *ui.Regions, toasts *ui.Toasts) *MarketHandler {
	return &MarketHandler{market: market, regions: regions, toasts: toasts}
}

func (h *MarketHandler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.market.States(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"states": states})
}

func (h *MarketHandler) Districts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.market.Districts(r.Context(), r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"districts": districts})
}

type priceRequest struct {
	State    string `json:"state"`
	District string `json:"district"`
	Crop     string `json:"crop"`
	Area     string `json:"area"`
}

func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	region := h.regions.Get(ui.RegionPrices)
	if err := region.Begin(ui.SkeletonGeneric); err != nil {
		writeBusy(w)
		return
	}

	estimate, err := h.market.Prices(r.Context(), req.State, req.District, req.Crop, req.Area)
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

	region.Complete(report.RenderPriceEstimate(estimate))
	writeRegion(w, http.StatusOK, region, h.toasts)
}
