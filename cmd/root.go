package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ksolomon/jobtrack/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Personal job application tracker backed by Google Sheets",
	Long: `Jobtrack records, updates, and deletes job application rows in a Google
Sheets worksheet. It can also fetch a job posting page (or take pasted text),
extract the key fields with an AI call, and append the result for you.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	RunE: runShell,
}

// Execute runs the root command
func Execute() {
	// SIGINT during console input ends the loop gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
