package services

import (
	"context"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// DashboardService assembles the main-app landing view.
type DashboardService struct {
	api     *backend.Client
	session *Session
	lang    *i18n.Store
}

func NewDashboardService(api *backend.Client, session *Session, lang *i18n.Store) *DashboardService {
	return &DashboardService{api: api, session: session, lang: lang}
}

// Load fetches the dashboard summary in the current language.
func (s *DashboardService) Load(ctx context.Context) (*models.DashboardSummary, error) {
	return s.api.DashboardSummary(ctx, string(s.lang.Lang()))
}

// Prime runs the first main-app load: the dashboard summary and the location
// directory fetch concurrently, since they feed independent UI regions. A
// failed directory fetch only costs the price-form dropdowns, so it is
// logged, not fatal.
func (s *DashboardService) Prime(ctx context.Context) (*models.DashboardSummary, error) {
	var summary *models.DashboardSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.Load(gctx)
		return err
	})
	g.Go(func() error {
		dirs, err := s.api.Locations(gctx)
		if err != nil {
			log.Errorf("could not load location data: %v", err)
			return nil
		}
		s.session.SetLocations(dirs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
