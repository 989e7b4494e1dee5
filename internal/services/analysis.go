package services

import (
	"context"
	"io"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// AnalysisService runs the two image-analysis features and owns the pending
// field-report save slot.
type AnalysisService struct {
	api     *backend.Client
	session *Session
	lang    *i18n.Store
}

func NewAnalysisService(api *backend.Client, session *Session, lang *i18n.Store) *AnalysisService {
	return &AnalysisService{api: api, session: session, lang: lang}
}

// AnalyzeCrop uploads a crop image for health inference. A missing image is
// caught before any request goes out.
func (s *AnalysisService) AnalyzeCrop(ctx context.Context, filename string, image io.Reader) (*models.CropAnalysis, error) {
	if image == nil {
		return nil, validationErr("Please upload a crop image.")
	}
	return s.api.AnalyzeCrop(ctx, &backend.Upload{
		Name:     "image",
		Filename: filename,
		Reader:   image,
	})
}

// AnalyzeField uploads a soil image plus coordinates. On success the result
// becomes the pending report: at most one report is held for saving, and a
// new analysis replaces it.
func (s *AnalysisService) AnalyzeField(ctx context.Context, latitude, longitude, lastCrop, filename string, image io.Reader) (*models.FieldReport, error) {
	if latitude == "" || longitude == "" {
		return nil, validationErr("Please provide latitude and longitude.")
	}
	if image == nil {
		return nil, validationErr("A soil image is required for this analysis.")
	}

	report, err := s.api.AnalyzeField(ctx, latitude, longitude, lastCrop, string(s.lang.Lang()), &backend.Upload{
		Name:     "image",
		Filename: filename,
		Reader:   image,
	})
	if err != nil {
		return nil, err
	}
	s.session.SetPendingReport(report)
	return report, nil
}

// HasPendingReport reports whether the save control should be visible.
func (s *AnalysisService) HasPendingReport() bool {
	return s.session.PendingReport() != nil
}

// SaveReport persists the pending report server-side, forwarding the exact
// payload analyze-field produced. Success clears the slot; failure leaves it
// armed for a retry.
func (s *AnalysisService) SaveReport(ctx context.Context) (*models.Ack, error) {
	pending := s.session.PendingReport()
	if pending == nil {
		return nil, validationErr("No field report to save.")
	}
	ack, err := s.api.SaveReport(ctx, pending.Raw)
	if err != nil {
		return nil, err
	}
	s.session.ClearPendingReport()
	return ack, nil
}
