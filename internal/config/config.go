package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	InputPath     string
	OutputPath    string
	PuzzleChannel string
	StoryChannel  string
}

// Load loads configuration from the environment, after a best-effort
// load of a local .env file
func Load() (*Config, error) {
	// Missing .env is fine; the process environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		InputPath:     getEnv("CHATSTATS_INPUT", "messages_1.csv"),
		OutputPath:    getEnv("CHATSTATS_OUTPUT", "stats.json"),
		PuzzleChannel: getEnv("CHATSTATS_PUZZLE_CHANNEL", "🧩-letterloops"),
		StoryChannel:  getEnv("CHATSTATS_STORY_CHANNEL", "📖-story-sharing"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("CHATSTATS_INPUT must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("CHATSTATS_OUTPUT must not be empty")
	}
	if c.PuzzleChannel == "" || c.StoryChannel == "" {
		return fmt.Errorf("channel names must not be empty")
	}
	return nil
}

// LogLevel returns the logrus level configured via LOG_LEVEL
func LogLevel() logrus.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
