package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	assistantinadapter "rovi/internal/modules/assistant/adapter/in"
	assistantoutadapter "rovi/internal/modules/assistant/adapter/out"
	assistantin "rovi/internal/modules/assistant/port/in"
	assistantout "rovi/internal/modules/assistant/port/out"
	assistantservice "rovi/internal/modules/assistant/service"
	assistantusecase "rovi/internal/modules/assistant/usecase"
	briefinginadapter "rovi/internal/modules/briefing/adapter/in"
	briefingoutadapter "rovi/internal/modules/briefing/adapter/out"
	briefingin "rovi/internal/modules/briefing/port/in"
	briefingusecase "rovi/internal/modules/briefing/usecase"
	sessioninadapter "rovi/internal/modules/session/adapter/in"
	sessionoutadapter "rovi/internal/modules/session/adapter/out"
	sessionin "rovi/internal/modules/session/port/in"
	sessionout "rovi/internal/modules/session/port/out"
	sessionservice "rovi/internal/modules/session/service"
	sessionusecase "rovi/internal/modules/session/usecase"
	weatherinadapter "rovi/internal/modules/weather/adapter/in"
	weatheroutadapter "rovi/internal/modules/weather/adapter/out"
	weatherin "rovi/internal/modules/weather/port/in"
	weatherservice "rovi/internal/modules/weather/service"
	weatherusecase "rovi/internal/modules/weather/usecase"
	"rovi/internal/platform/clock"
	"rovi/internal/platform/config"
	"rovi/internal/platform/id"
	"rovi/internal/platform/logging"
	uiapp "rovi/internal/ui/app"
)

type App struct {
	SessionCLI   sessioninadapter.CLIHandler
	AssistantCLI assistantinadapter.CLIHandler
	WeatherCLI   weatherinadapter.CLIHandler
	BriefingCLI  briefinginadapter.CLIHandler

	SessionUC   sessionin.Usecase
	AssistantUC assistantin.Usecase
	WeatherUC   weatherin.Usecase
	BriefingUC  briefingin.Usecase

	Config config.Config
	Logger *zap.Logger

	watcher sessionout.ChangeWatcher
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	logger = logger.With(zap.String("instance", id.RandomHex{}.New()))

	clk := clock.SystemClock{}
	ctx := context.Background()

	watcher := sessionoutadapter.NewSlotWatcher(cfg.DataDir)
	sessionSvc := sessionservice.NewSessionService(
		sessionoutadapter.NewFileSessionStore(cfg.DataDir),
		sessionoutadapter.NewFileOverrideStore(cfg.DataDir),
		logger,
	)
	sessionUC := sessionusecase.NewInteractor(sessionSvc, watcher, logger)

	historyStore, err := assistantoutadapter.NewSQLiteHistoryStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history store: %w", err)
	}
	generator := newGenerator(ctx, cfg, logger)
	assistantUC := assistantusecase.NewInteractor(
		assistantservice.NewInterpreter(),
		sessionUC,
		generator,
		historyStore,
		clk,
		logger,
		cfg.HistoryTurns,
	)

	weatherClient := weatheroutadapter.NewOpenMeteoClient()
	weatherUC := weatherusecase.NewInteractor(weatherservice.NewWeatherService(weatherClient, weatherClient))

	briefingUC := briefingusecase.NewInteractor(
		generator,
		briefingoutadapter.NewFileQuoteCache(cfg.DataDir),
		sessionUC,
		clk,
		logger,
	)

	return &App{
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		AssistantCLI: assistantinadapter.NewCLIHandler(assistantUC),
		WeatherCLI:   weatherinadapter.NewCLIHandler(weatherUC),
		BriefingCLI:  briefinginadapter.NewCLIHandler(briefingUC),
		SessionUC:    sessionUC,
		AssistantUC:  assistantUC,
		WeatherUC:    weatherUC,
		BriefingUC:   briefingUC,
		Config:       cfg,
		Logger:       logger,
		watcher:      watcher,
	}, nil
}

// Close releases background resources. Safe to call once at process exit.
func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	_ = a.Logger.Sync()
}

// newGenerator builds the Gemini client when a key is configured. Without
// one, chat degrades to command handling plus the canned fallbacks.
func newGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) assistantout.ReplyGenerator {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		logger.Warn("GEMINI_API_KEY not set, text generation disabled")
		return disabledGenerator{}
	}
	generator, err := assistantoutadapter.NewGeminiGenerator(ctx, key, cfg.Model)
	if err != nil {
		logger.Error("gemini client unavailable", zap.Error(err))
		return disabledGenerator{}
	}
	return generator
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("text generation disabled: GEMINI_API_KEY not set")
}

func RunTUI(app *App) error {
	changes := make(chan string, 8)
	unsubscribe := app.SessionUC.Subscribe(func(slot string) {
		select {
		case changes <- slot:
		default:
		}
	})
	defer unsubscribe()

	zone, err := time.LoadLocation(app.Config.Timezone)
	if err != nil {
		zone = time.UTC
	}

	model := uiapp.NewModel(
		app.SessionUC,
		app.AssistantUC,
		app.WeatherUC,
		app.BriefingUC,
		app.Config.City,
		zone,
		changes,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
