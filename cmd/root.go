// Package cmd implements the grana CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"grana/internal/api"
	"grana/internal/config"
	"grana/internal/ledger"
	"grana/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL string
	flagYear   int
	flagMonth  int
)

var rootCmd = &cobra.Command{
	Use:   "grana",
	Short: "Personal finance tracker",
	Long:  "Track monthly expenses and income against a finance-manager API.",
	RunE:  runMonth,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Year to show (default: current)")
	rootCmd.PersistentFlags().IntVarP(&flagMonth, "month", "m", 0, "Month to show, 1-12 (default: current)")
}

// apiClient builds the client from flag > env > config > default.
func apiClient() *api.Client {
	if flagAPIURL != "" {
		return api.NewClient(flagAPIURL)
	}
	cfg, _ := config.Load()
	return api.NewClient(config.BaseURL(cfg))
}

// requireSession loads the stored identity or tells the user how to
// get one.
func requireSession() (session.Session, error) {
	sess, err := session.Load()
	if errors.Is(err, session.ErrNoSession) {
		return session.Session{}, errors.New("not logged in — run `grana login` first")
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("reading session: %w", err)
	}
	return sess, nil
}

// monthCursor resolves the --year/--month flags against today.
func monthCursor() ledger.MonthCursor {
	return ledger.CursorFor(flagYear, flagMonth, time.Now())
}
