package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/proprep/internal/config"
	"github.com/abhisek/proprep/internal/insight"
	"github.com/abhisek/proprep/internal/llm"
	"github.com/abhisek/proprep/internal/logger"
	"github.com/abhisek/proprep/internal/store"
)

var (
	v   = config.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "proprep",
	Short: "Career insights dashboard in your terminal",
	Long: "ProPrep is a terminal dashboard for industry market insights, AI skill " +
		"explanations and interview quiz review.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides PROPREP_DB env var)")
	flags.String("config", "", "Path to config file (default $HOME/.proprep/config.yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.String("industry", "", "Industry to show (default: most recently stored)")

	mustBind(v, "db", "db")
	mustBind(v, "log.level", "log-level")
	mustBind(v, "log.format", "log-format")
	mustBind(v, "market.industry", "industry")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func mustBind(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// setup reads the config file and applies logging settings before any
// command runs.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetFormat(cfg.LogFormat)
	return nil
}

// resolveDBPath returns the database path using --db / PROPREP_DB from
// config (highest priority), then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the configured LLM provider, recording every call
// in the store.
func newProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	if !cfg.LLMConfigured {
		return nil, fmt.Errorf("no LLM provider configured: set GEMINI_API_KEY or PROPREP_LLM_PROVIDER")
	}
	return llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
}

// newFetcher returns the skill insight fetcher and the model it uses.
// Without a provider every insight falls back.
func newFetcher(ctx context.Context, st *store.Store) (insight.Fetcher, string) {
	p, err := newProvider(ctx, st)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("skill insights unavailable")
		return insight.Unavailable{Err: err}, "no model"
	}
	return insight.NewService(p, insight.Config{
		Timeout:     cfg.Insight.Timeout,
		MaxTokens:   cfg.Insight.MaxTokens,
		Temperature: cfg.Insight.Temperature,
	}), p.ModelID()
}
