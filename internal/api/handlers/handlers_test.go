package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitinnn1403/kisan-drishti/internal/config"
	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type fixture struct {
	session  *services.Session
	regions  *ui.Regions
	toasts   *ui.Toasts
	sections *ui.Sections
	lang     *i18n.Store
	api      *backend.Client
}

func newFixture(t *testing.T, backendHandler http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(&config.Config{BackendURL: srv.URL, SendCookies: true})
	require.NoError(t, err)

	lang := i18n.NewStore(nil, "en")
	lang.Init(context.Background())

	return &fixture{
		session:  services.NewSession(),
		regions:  ui.NewRegions(),
		toasts:   ui.NewToasts(),
		sections: ui.NewSections(),
		lang:     lang,
		api:      api,
	}
}

func TestLoginIssuesGatewaySession(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			io.WriteString(w, `{"message": "ok"}`)
		case "/api/check_auth":
			io.WriteString(w, `{"isAuthenticated": true, "username": "ravi"}`)
		}
	}))
	h := NewAuthHandler(services.NewAuthService(fx.api, fx.session), fx.session, fx.toasts, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username": "ravi", "password": "secret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "kd_session", cookies[0].Name)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ravi", body["username"])
}

func TestLoginValidationRaisesWarningToast(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("validation failures must not reach the backend")
	}))
	h := NewAuthHandler(services.NewAuthService(fx.api, fx.session), fx.session, fx.toasts, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username": "", "password": "x"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	toasts := fx.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, ui.SeverityWarning, toasts[0].Severity)
	assert.Equal(t, "Please enter both username and password.", toasts[0].Message)
}

func TestPricesBusyRegionConflict(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": true, "result": {"crop": "Wheat"}}`)
	}))
	h := NewMarketHandler(services.NewMarketService(fx.api, fx.session, fx.lang), fx.regions, fx.toasts)

	// Simulate an in-flight lookup.
	require.NoError(t, fx.regions.Get(ui.RegionPrices).Begin(ui.SkeletonGeneric))

	req := httptest.NewRequest(http.MethodPost, "/api/prices",
		strings.NewReader(`{"state": "Rajasthan", "district": "Jaipur", "crop": "Wheat", "area": "2"}`))
	rec := httptest.NewRecorder()
	h.Prices(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPricesRendersIntoRegion(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": true, "result": {
            "crop": "Wheat", "location": "Jaipur, Rajasthan",
            "average_mandi_price": 2600, "estimated_yield_qpa": 18.5,
            "total_estimated_revenue": 123456, "area_acres": 2.5}}`)
	}))
	h := NewMarketHandler(services.NewMarketService(fx.api, fx.session, fx.lang), fx.regions, fx.toasts)

	req := httptest.NewRequest(http.MethodPost, "/api/prices",
		strings.NewReader(`{"state": "Rajasthan", "district": "Jaipur", "crop": "Wheat", "area": "2.5"}`))
	rec := httptest.NewRecorder()
	h.Prices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp regionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "priceResults", resp.Region.Region)
	assert.Equal(t, "loaded", resp.Region.State)
	assert.Contains(t, resp.Region.Content, "₹1,23,456")
	assert.Equal(t, ui.FadeMillis, resp.Region.FadeMillis)

	// The region accepts the next lookup.
	assert.NoError(t, fx.regions.Get(ui.RegionPrices).Begin(ui.SkeletonGeneric))
}

func TestPricesBackendFailureFailsRegionWithToast(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		io.WriteString(w, `{"error": "mandi service down"}`)
	}))
	h := NewMarketHandler(services.NewMarketService(fx.api, fx.session, fx.lang), fx.regions, fx.toasts)

	req := httptest.NewRequest(http.MethodPost, "/api/prices",
		strings.NewReader(`{"state": "Rajasthan", "district": "Jaipur", "crop": "Wheat", "area": "2"}`))
	rec := httptest.NewRecorder()
	h.Prices(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp regionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Region.State)
	assert.Contains(t, resp.Region.Content, "mandi service down")
	require.Len(t, resp.Toasts, 1)
	assert.Equal(t, ui.SeverityError, resp.Toasts[0].Severity)
}

func TestLanguageSetReportsDashboardReload(t *testing.T) {
	fx := newFixture(t, http.NotFoundHandler())
	h := NewLanguageHandler(fx.lang, fx.sections)

	// Dashboard visible: a switch asks for a reload.
	fx.sections.Show(ui.SectionDashboard)
	req := httptest.NewRequest(http.MethodPost, "/ui/lang", strings.NewReader(`{"lang": "hi"}`))
	rec := httptest.NewRecorder()
	h.Set(rec, req)

	var body struct {
		Lang    string            `json:"lang"`
		Strings map[string]string `json:"strings"`
		Reload  bool              `json:"reload_dashboard"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "hi", body.Lang)
	assert.True(t, body.Reload)
	assert.NotEmpty(t, body.Strings["nav_dashboard"])

	// Another section visible: no reload needed.
	fx.sections.Show(ui.SectionSettings)
	req = httptest.NewRequest(http.MethodPost, "/ui/lang", strings.NewReader(`{"lang": "en"}`))
	rec = httptest.NewRecorder()
	h.Set(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Reload)
}

func TestAnalyzeCropValidationResetsRegion(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("missing image must not reach the backend")
	}))
	h := NewAnalysisHandler(services.NewAnalysisService(fx.api, fx.session, fx.lang), fx.regions, fx.toasts, fx.lang)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-crop", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	h.AnalyzeCrop(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ui.StateIdle, fx.regions.Get(ui.RegionCrop).Snapshot().State,
		"rejected form must not leave the region loading")

	toasts := fx.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Please upload a crop image.", toasts[0].Message)
}
