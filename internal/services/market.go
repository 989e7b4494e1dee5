package services

import (
	"context"
	"sort"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// MarketService serves the price-lookup feature and the location dropdowns.
type MarketService struct {
	api     *backend.Client
	session *Session
	lang    *i18n.Store
}

func NewMarketService(api *backend.Client, session *Session, lang *i18n.Store) *MarketService {
	return &MarketService{api: api, session: session, lang: lang}
}

// Locations returns the state-to-districts directory, fetching it once per
// session and serving the cache afterwards.
func (s *MarketService) Locations(ctx context.Context) (models.LocationDirectory, error) {
	if cached := s.session.Locations(); cached != nil {
		return cached, nil
	}
	dirs, err := s.api.Locations(ctx)
	if err != nil {
		return nil, err
	}
	s.session.SetLocations(dirs)
	return dirs, nil
}

// States lists the directory's states sorted for the dropdown.
func (s *MarketService) States(ctx context.Context) ([]string, error) {
	dirs, err := s.Locations(ctx)
	if err != nil {
		return nil, err
	}
	states := make([]string, 0, len(dirs))
	for state := range dirs {
		states = append(states, state)
	}
	sort.Strings(states)
	return states, nil
}

// Districts lists a state's districts; an unknown state yields an empty
// list.
func (s *MarketService) Districts(ctx context.Context, state string) ([]string, error) {
	dirs, err := s.Locations(ctx)
	if err != nil {
		return nil, err
	}
	return dirs[state], nil
}

// Prices fetches the revenue estimate. All four form fields are required
// before any request is sent.
func (s *MarketService) Prices(ctx context.Context, state, district, crop, area string) (*models.PriceEstimate, error) {
	if state == "" || district == "" || crop == "" || area == "" {
		return nil, validationErr("Please fill in all fields.")
	}
	return s.api.MandiPrices(ctx, backend.MandiPriceQuery{
		State:    state,
		District: district,
		Crop:     crop,
		Area:     area,
		Lang:     string(s.lang.Lang()),
	})
}
