package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// One method per backend capability. Success bodies are returned as decoded
// models without schema validation; malformed-but-2xx payloads propagate to
// the renderers, which degrade instead of failing.

// Login authenticates against the backend; the session cookie lands in the
// client jar.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Ack, error) {
	body := map[string]string{"email": email, "password": password}
	var out models.Ack
	if err := c.postJSON(ctx, "/api/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and establishes a session.
func (c *Client) Register(ctx context.Context, username, contact, email, password string) (*models.Ack, error) {
	body := map[string]string{
		"username": username,
		"contact":  contact,
		"email":    email,
		"password": password,
	}
	var out models.Ack
	if err := c.postJSON(ctx, "/api/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/logout", nil, nil)
}

// CheckAuth reports whether the jar holds a live session.
func (c *Client) CheckAuth(ctx context.Context) (*models.AuthStatus, error) {
	var out models.AuthStatus
	if err := c.getJSON(ctx, "/api/check_auth", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardSummary fetches the localized dashboard payload.
func (c *Client) DashboardSummary(ctx context.Context, lang string) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.getJSON(ctx, "/api/dashboard_summary?lang="+lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeCrop uploads a crop image for health inference.
func (c *Client) AnalyzeCrop(ctx context.Context, image *Upload) (*models.CropAnalysis, error) {
	var out models.CropAnalysisResponse
	if err := c.postMultipart(ctx, "/api/analyze_crop", nil, image, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// AnalyzeField uploads a soil image plus coordinates for a full field report.
func (c *Client) AnalyzeField(ctx context.Context, latitude, longitude, lastCrop, lang string, image *Upload) (*models.FieldReport, error) {
	fields := map[string]string{
		"latitude":  latitude,
		"longitude": longitude,
		"lastCrop":  lastCrop,
		"lang":      lang,
	}
	var out models.FieldReport
	if err := c.postMultipart(ctx, "/api/analyze_field", fields, image, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Locations fetches the state-to-districts directory.
func (c *Client) Locations(ctx context.Context) (models.LocationDirectory, error) {
	var out models.LocationDirectory
	if err := c.getJSON(ctx, "/api/locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MandiPriceQuery describes one price lookup.
type MandiPriceQuery struct {
	State    string `json:"state"`
	District string `json:"district"`
	Crop     string `json:"crop"`
	Area     string `json:"area"`
	Lang     string `json:"lang"`
}

// MandiPrices fetches the revenue estimate for a crop/location/area.
func (c *Client) MandiPrices(ctx context.Context, q MandiPriceQuery) (*models.PriceEstimate, error) {
	var out models.PriceResponse
	if err := c.postJSON(ctx, "/api/mandi_prices", q, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// SaveReport persists a field report server-side. The raw backend payload is
// forwarded untouched so saving round-trips exactly what analyze-field
// produced.
func (c *Client) SaveReport(ctx context.Context, report json.RawMessage) (*models.Ack, error) {
	body := map[string]json.RawMessage{"report_data": report}
	var out models.Ack
	if err := c.postJSON(ctx, "/api/save_report", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reports lists the saved field reports.
func (c *Client) Reports(ctx context.Context) ([]models.SavedReport, error) {
	var out models.ReportsResponse
	if err := c.getJSON(ctx, "/api/reports", &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

// DeleteReport removes one saved report by id.
func (c *Client) DeleteReport(ctx context.Context, id int64) (*models.Ack, error) {
	var out models.Ack
	if err := c.deleteJSON(ctx, fmt.Sprintf("/api/reports/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat sends one chat turn (message or event) and returns the reply plus the
// replacement history.
func (c *Client) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var out models.ChatResponse
	if err := c.postJSON(ctx, "/api/chat_with_drishti", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) (*models.Ack, error) {
	body := map[string]string{"current_password": current, "new_password": next}
	var out models.Ack
	if err := c.postJSON(ctx, "/api/change_password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount permanently removes the account.
func (c *Client) DeleteAccount(ctx context.Context) (*models.Ack, error) {
	var out models.Ack
	if err := c.deleteJSON(ctx, "/api/delete_account", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FertilizerPlan derives a nutrient plan from a saved report. Plan-level
// failures are reported in-band; they are normalized to an error here so
// callers see one failure path.
func (c *Client) FertilizerPlan(ctx context.Context, reportID int64) (*models.FertilizerPlan, error) {
	var out models.FertilizerPlanResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/get_fertilizer_plan/%d", reportID), &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Plan == nil {
		msg := out.Error
		if msg == "" {
			msg = "Could not generate a plan for this report."
		}
		return nil, &APIError{Message: msg}
	}
	return out.Plan, nil
}
