package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Staging  StagingConfig
	Roster   RosterConfig
	Feedback FeedbackConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type StagingConfig struct {
	TTLMinutes int
}

type RosterConfig struct {
	Dir string
}

type FeedbackConfig struct {
	ExportPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("STAGING_TTL_MINUTES", 30)
	viper.SetDefault("ROSTER_DIR", "instance/")
	viper.SetDefault("FEEDBACK_EXPORT_PATH", "static/feedback_data.xlsx")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Staging: StagingConfig{
			TTLMinutes: viper.GetInt("STAGING_TTL_MINUTES"),
		},
		Roster: RosterConfig{
			Dir: viper.GetString("ROSTER_DIR"),
		},
		Feedback: FeedbackConfig{
			ExportPath: viper.GetString("FEEDBACK_EXPORT_PATH"),
		},
	}

	return config, nil
}
