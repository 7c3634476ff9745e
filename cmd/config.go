package cmd

import (
	"fmt"

	"github.com/ksolomon/jobtrack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
	// Only the config file is needed here; skip the full app setup so
	// configuration can be fixed before the tracker can connect.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Initialize()
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("Spreadsheet ID:"), config.AppConfig.SpreadsheetID)
		fmt.Printf("%s %s\n", labelStyle.Render("Worksheet:"), config.AppConfig.Worksheet)
		fmt.Printf("%s %s\n", labelStyle.Render("Credentials File:"), config.AppConfig.CredentialsFile)
		fmt.Printf("%s %s\n", labelStyle.Render("Model:"), config.AppConfig.Model)
		fmt.Printf("%s %s\n", labelStyle.Render("Log File:"), config.AppConfig.LogFile)

		// Show if the API key is configured (but don't show the actual key)
		if config.AppConfig.OpenAIKey != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("OpenAI Key:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("OpenAI Key:"), "✗ Not configured")
		}
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobtrack config set --key spreadsheet_id --value 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
  jobtrack config set --key worksheet --value job_tracker_1
  jobtrack config set --key model --value gpt-4o`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required")
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}

		fmt.Printf("✓ Set %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key to update")
	setConfigCmd.Flags().String("value", "", "New value")
}
