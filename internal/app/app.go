package app

import (
	"context"

	"github.com/apex/log"

	"github.com/Nitinnn1403/kisan-drishti/internal/config"
	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/core/prefs"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

// App owns the gateway's long-lived pieces.
type App struct {
	Prefs    prefs.Store
	Lang     *i18n.Store
	Backend  *backend.Client
	Session  *services.Session
	Regions  *ui.Regions
	Toasts   *ui.Toasts
	Sections *ui.Sections
	Server   *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := prefs.NewSQLiteStore(ctx, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	log.Info("preference store ready")

	lang := i18n.NewStore(store, cfg.DefaultLang)
	lang.Init(ctx)
	log.WithField("lang", string(lang.Lang())).Info("language restored")

	api, err := backend.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	session := services.NewSession()
	regions := ui.NewRegions()
	toasts := ui.NewToasts()
	sections := ui.NewSections()

	auth := services.NewAuthService(api, session)
	dashboard := services.NewDashboardService(api, session, lang)
	analysis := services.NewAnalysisService(api, session, lang)
	market := services.NewMarketService(api, session, lang)
	reports := services.NewReportsService(api, session)
	chat := services.NewChatService(api, session)

	// A language switch invalidates the dashboard's rendered content; the
	// surface reloads it if that section is visible.
	lang.OnChange(func(l i18n.Language) {
		regions.Get(ui.RegionDashboard).Reset()
	})

	server := NewServer(cfg, &Handlers{
		Auth:      auth,
		Dashboard: dashboard,
		Analysis:  analysis,
		Market:    market,
		Reports:   reports,
		Chat:      chat,
	}, lang, session, regions, toasts, sections)

	return &App{
		Prefs:    store,
		Lang:     lang,
		Backend:  api,
		Session:  session,
		Regions:  regions,
		Toasts:   toasts,
		Sections: sections,
		Server:   server,
	}, nil
}

func (a *App) Close() {
	if a.Prefs != nil {
		_ = a.Prefs.Close()
	}
}
