package cmd

import (
	"fmt"

	"grana/internal/session"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	if !session.Exists() {
		fmt.Println("  Not logged in.")
		return nil
	}
	if err := session.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Println("  Logged out.")
	return nil
}
