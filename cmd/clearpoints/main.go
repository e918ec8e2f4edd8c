package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clearpoints/internal/bootstrap"
	"clearpoints/internal/platform/config"
	"clearpoints/internal/platform/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir   string
	logLevel  string
	noHistory bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	play := newPlayCmd(flags)

	root := &cobra.Command{
		Use:           "clearpoints",
		Short:         "Click the numbers in ascending order before the clock runs away",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          play.RunE,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", config.DefaultDataDir(), "directory for history, log and config.yaml")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&flags.noHistory, "no-history", false, "do not record results")
	root.Flags().AddFlagSet(play.Flags())

	root.AddCommand(play)
	root.AddCommand(newHistoryCmd(flags))
	return root
}

func loadConfig(flags *rootFlags, seed int64) (config.Config, error) {
	cfg, err := config.Load(flags.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(flags.logLevel) != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.noHistory {
		cfg.History = false
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func loadApp(cfg config.Config, log zerolog.Logger) (*bootstrap.App, error) {
	return bootstrap.New(cfg, log)
}

func newPlayCmd(flags *rootFlags) *cobra.Command {
	var points string
	var seed int64
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the game in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags, seed)
			if err != nil {
				return err
			}
			log, closer, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()
			app, err := loadApp(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app, points)
		},
	}
	cmd.Flags().StringVar(&points, "points", "", "prefill the number of points")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix marker placement (0 = random)")
	return cmd
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Recorded game results"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent games, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cliApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			records, err := app.HistoryCLI.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no games recorded")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tpoints=%d\tcleared=%d\t%.1fs\t%s\n",
					r.EndedAt.Local().Format("2006-01-02 15:04:05"), r.Outcome, r.TargetCount, r.Cleared, r.Elapsed.Seconds(), r.SessionID)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "number of games to show")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and best times per point count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cliApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.HistoryCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "games=%d wins=%d losses=%d\n", out.Games, out.Wins, out.Losses)
			for _, b := range out.Best {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "best points=%d %.1fs session=%s\n", b.TargetCount, b.Elapsed.Seconds(), b.SessionID)
			}
			return nil
		},
	}

	var outPath string
	var exportLimit int
	export := &cobra.Command{
		Use:   "export --out <file>",
		Short: "Write the history as a markdown report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(outPath) == "" {
				return fmt.Errorf("--out is required")
			}
			app, err := cliApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.HistoryCLI.Export(context.Background(), outPath, exportLimit)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d games to %s\n", out.Records, out.Path)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "markdown file to create or update")
	export.Flags().IntVar(&exportLimit, "limit", 50, "number of recent games in the report")

	history.AddCommand(list, summary, export)
	return history
}

// cliApp builds the app with a console logger on stderr.
func cliApp(flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags, 0)
	if err != nil {
		return nil, err
	}
	log := logging.Console(os.Stderr, cfg.LogLevel)
	if !cfg.History {
		log.Warn().Msg("history disabled, results are empty")
	}
	return loadApp(cfg, log)
}
