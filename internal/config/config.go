package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	Worksheet       string `mapstructure:"worksheet"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Model           string `mapstructure:"model"`
	LogFile         string `mapstructure:"log_file"`

	// OpenAIKey comes from the environment (.env), never from the yaml file.
	OpenAIKey string `mapstructure:"-"`
}

var AppConfig *Config

// Initialize loads .env and the configuration file, creating a default
// config on first run.
func Initialize() error {
	// Missing .env is fine; the key may be exported directly.
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".jobtrack")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("spreadsheet_id", "")
	viper.SetDefault("worksheet", "job_tracker_1")
	viper.SetDefault("credentials_file", "credentials.json")
	viper.SetDefault("model", "gpt-4-turbo")
	viper.SetDefault("log_file", "job_tracker.log")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	AppConfig.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Jobtrack Configuration
# The spreadsheet ID is the long token in the sheet's URL.
spreadsheet_id: ""
worksheet: job_tracker_1

# Service account credentials for Google Sheets (keep this file secure!)
credentials_file: credentials.json

# Completion model used for job description extraction
model: gpt-4-turbo

log_file: job_tracker.log
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobtrack", "config.yaml")
}
