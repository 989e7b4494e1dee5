package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
	"github.com/Nitinnn1403/kisan-drishti/internal/report"
)

// ReportsService serves the saved-report list, viewing, deletion, and the
// fertilizer-plan feature keyed off saved reports.
type ReportsService struct {
	api     *backend.Client
	session *Session

	mu     sync.Mutex
	listed []models.SavedReport
}

func NewReportsService(api *backend.Client, session *Session) *ReportsService {
	return &ReportsService{api: api, session: session}
}

// List fetches the saved reports and remembers them so View can resolve ids
// without another round trip.
func (s *ReportsService) List(ctx context.Context) ([]models.SavedReport, error) {
	reports, err := s.api.Reports(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.listed = reports
	s.mu.Unlock()
	return reports, nil
}

// View resolves a listed report's decoded payload plus the language it was
// generated in. Viewing never arms the save slot; the report is already
// persisted.
func (s *ReportsService) View(id int64) (*models.FieldReport, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.listed {
		if r.ID == id && r.Report.Report != nil {
			lang := r.Report.Report.Lang
			if lang == "" {
				lang = "en"
			}
			return r.Report.Report, lang, nil
		}
	}
	return nil, "", fmt.Errorf("report %d not found", id)
}

// Delete removes one saved report. On failure the cached list stays as it
// was; the caller re-fetches only after success.
func (s *ReportsService) Delete(ctx context.Context, id int64) (*models.Ack, error) {
	return s.api.DeleteReport(ctx, id)
}

// PlanOption is one entry of the fertilizer report dropdown.
type PlanOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// PlanOptions builds the dropdown entries from the saved reports: the report
// date plus its top recommended crop.
func (s *ReportsService) PlanOptions(ctx context.Context) ([]PlanOption, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]PlanOption, 0, len(reports))
	for _, r := range reports {
		data := r.Report.Report
		if data == nil {
			continue
		}
		topCrop := "N/A"
		if rec := data.Recommendations; rec != nil && len(rec.RecommendedCrops) > 0 {
			topCrop = rec.RecommendedCrops[0]
		}
		options = append(options, PlanOption{
			ID:    r.ID,
			Label: fmt.Sprintf("Report from %s (Crop: %s)", report.FormatDate(data.GeneratedAt), topCrop),
		})
	}
	return options, nil
}

// Plan requests the fertilizer plan for a selected report. A missing
// selection is caught before any request goes out.
func (s *ReportsService) Plan(ctx context.Context, id int64) (*models.FertilizerPlan, error) {
	if id == 0 {
		return nil, validationErr("Please select a report first.")
	}
	return s.api.FertilizerPlan(ctx, id)
}
