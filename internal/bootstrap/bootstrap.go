package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	analyticsinadapter "statdeck/internal/modules/analytics/adapter/in"
	analyticsoutadapter "statdeck/internal/modules/analytics/adapter/out"
	analyticsservice "statdeck/internal/modules/analytics/service"
	analyticsusecase "statdeck/internal/modules/analytics/usecase"
	authinadapter "statdeck/internal/modules/auth/adapter/in"
	authoutadapter "statdeck/internal/modules/auth/adapter/out"
	authservice "statdeck/internal/modules/auth/service"
	authusecase "statdeck/internal/modules/auth/usecase"
	usersinadapter "statdeck/internal/modules/users/adapter/in"
	usersoutadapter "statdeck/internal/modules/users/adapter/out"
	usersservice "statdeck/internal/modules/users/service"
	usersusecase "statdeck/internal/modules/users/usecase"
	"statdeck/internal/platform/clock"
	"statdeck/internal/platform/config"
	"statdeck/internal/platform/httpclient"
	"statdeck/internal/platform/id"
	"statdeck/internal/platform/kvstore"
	uiapp "statdeck/internal/ui/app"
)

type App struct {
	Config       config.Config
	Logger       *zap.Logger
	AuthCLI      authinadapter.CLIHandler
	AuthTUI      authinadapter.TUIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	UsersCLI     usersinadapter.CLIHandler

	store *kvstore.Store
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}

	store, err := kvstore.Open(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	// The stored token feeds the bearer header directly, so the client can
	// exist before the auth usecase that depends on it.
	sessions := authoutadapter.NewKVSessionStore(store)
	client := httpclient.New(httpclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}, sessions, id.UUID{}, logger)

	authUC := authusecase.NewInteractor(
		authservice.NewSessionService(),
		sessions,
		authoutadapter.NewHTTPAuthenticator(client),
		logger,
	)
	analyticsUC := analyticsusecase.NewInteractor(
		analyticsservice.NewAnalyticsService(),
		analyticsoutadapter.NewHTTPMetricsSource(client),
	)
	usersUC := usersusecase.NewInteractor(
		usersservice.NewUsersService(),
		usersoutadapter.NewHTTPDirectory(client),
	)

	logger.Debug("app wired",
		zap.String("base_url", client.BaseURL()),
		zap.String("state_dir", cfg.StateDir),
	)

	return &App{
		Config:       cfg,
		Logger:       logger,
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		AuthTUI:      authinadapter.NewTUIHandler(authUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		UsersCLI:     usersinadapter.NewCLIHandler(usersUC),
		store:        store,
	}, nil
}

func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.store.Close()
}

// NewModel builds the root model. startScreen overrides the configured
// default for the first screen after sign-in.
func (a *App) NewModel(ctx context.Context, startScreen string) uiapp.Model {
	return uiapp.NewModel(ctx, a.AuthTUI, a.AnalyticsCLI, a.UsersCLI, uiapp.Options{
		Dark:          a.Config.DarkMode,
		DefaultScreen: a.Config.DefaultScreen,
		StartScreen:   startScreen,
	}, a.Logger)
}

func RunTUI(ctx context.Context, app *App, startScreen string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	program := tea.NewProgram(app.NewModel(ctx, startScreen), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
