package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/proprep/internal/app"
	"github.com/abhisek/proprep/internal/logger"
	"github.com/abhisek/proprep/internal/screens/home"
	"github.com/abhisek/proprep/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the dashboard TUI (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// The alt screen owns the terminal; logs go to a file instead.
	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)
	defer logger.SetOutput(os.Stderr)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	fetcher, model := newFetcher(ctx, st)

	return app.Run(ctx, app.Options{
		Home: home.Deps{
			Ctx:           ctx,
			Markets:       st.MarketRepo(),
			Assessments:   st.AssessmentRepo(),
			Fetcher:       fetcher,
			Industry:      cfg.Market.Industry,
			LLMConfigured: cfg.LLMConfigured,
		},
		Status: model,
	})
}

func openLogFile() (*os.File, error) {
	dir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "proprep.log")
	if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
