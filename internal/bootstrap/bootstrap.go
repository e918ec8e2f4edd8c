package bootstrap

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	gameinadapter "clearpoints/internal/modules/game/adapter/in"
	gameoutadapter "clearpoints/internal/modules/game/adapter/out"
	gameservice "clearpoints/internal/modules/game/service"
	gameusecase "clearpoints/internal/modules/game/usecase"
	historyinadapter "clearpoints/internal/modules/history/adapter/in"
	historyoutadapter "clearpoints/internal/modules/history/adapter/out"
	historyout "clearpoints/internal/modules/history/port/out"
	historyservice "clearpoints/internal/modules/history/service"
	historyusecase "clearpoints/internal/modules/history/usecase"
	"clearpoints/internal/platform/clock"
	"clearpoints/internal/platform/config"
	"clearpoints/internal/platform/id"
	uiapp "clearpoints/internal/ui/app"
)

type App struct {
	GameTUI    gameinadapter.TUIHandler
	HistoryCLI historyinadapter.CLIHandler

	cfg     config.Config
	log     zerolog.Logger
	closers []io.Closer
}

func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	app := &App{cfg: cfg, log: log}

	var store historyout.ResultStore = historyoutadapter.NopResultStore{}
	if cfg.History {
		sqlite, err := historyoutadapter.NewSQLiteResultStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new result store: %w", err)
		}
		app.closers = append(app.closers, sqlite)
		store = sqlite
	}
	historyUC := historyusecase.NewInteractor(historyservice.NewHistoryService(
		clk,
		store,
		historyoutadapter.NewMarkdownReportWriter(),
	))

	seed := cfg.Seed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Bool("history", cfg.History).Msg("bootstrap")
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	gameUC := gameusecase.NewInteractor(
		gameservice.NewGameService(clk, ids, rng),
		gameoutadapter.NewHistoryRecorder(historyUC),
		log,
	)

	app.GameTUI = gameinadapter.NewTUIHandler(gameUC)
	app.HistoryCLI = historyinadapter.NewCLIHandler(historyUC)
	return app, nil
}

// Close releases the stores opened by New.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(app *App, points string) error {
	model := uiapp.NewModel(app.GameTUI, app.cfg.CellWidth, app.cfg.CellHeight, points, app.log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	started := time.Now()
	_, err := program.Run()
	app.log.Info().Dur("uptime", time.Since(started)).Err(err).Msg("tui exited")
	return err
}
