// Package cmd wires the cobra entry point. There is no subcommand grammar:
// the root command opens the store and drops into the interactive menu.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"spendwise/internal/budget"
	"spendwise/internal/buildinfo"
	"spendwise/internal/config"
	"spendwise/internal/ledger"
	"spendwise/internal/logging"
	"spendwise/internal/menu"
	"spendwise/internal/report"
	"spendwise/internal/store"
	"spendwise/internal/tui"
	"spendwise/internal/tui/theme"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:     "spendwise",
	Short:   "Personal finance tracker",
	Long:    "Track income and expenses, category budgets, and savings goals from an interactive menu.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
	RunE:    run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go. Anything that
// reaches it is a storage or setup failure, which is fatal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spendwise: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (overrides config)")
}

func run(_ *cobra.Command, _ []string) error {
	// .env is optional; missing file is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	logFile, err := logging.Setup(cfg.LogPath(), cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	theme.SetActive(cfg.Appearance.Theme)

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return err
	}
	defer st.Close()

	logrus.WithFields(logrus.Fields{
		"db":      cfg.DBPath(),
		"version": buildinfo.Version,
	}).Info("session started")

	svc := ledger.New(st)
	tracker := budget.NewTracker(st)
	reporter := report.NewReporter(st)

	dashboard := func() error {
		app := tui.NewApp(svc, tracker, reporter)
		_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	}

	return menu.New(svc, tracker, reporter, dashboard).Run()
}
