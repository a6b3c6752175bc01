package cmd

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

var registerEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func runRegister(_ *cobra.Command, _ []string) error {
	var name, email, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter your name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(func(s string) error {
					if !registerEmailPattern.MatchString(strings.TrimSpace(s)) {
						return errors.New("please enter a valid email")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if len(s) < 6 {
						return errors.New("password must be at least 6 characters")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := apiClient()
	if err := client.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println("  Account created. Run `grana login` to sign in.")
	return nil
}
