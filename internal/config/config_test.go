package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "messages_1.csv", cfg.InputPath)
	assert.Equal(t, "stats.json", cfg.OutputPath)
	assert.Equal(t, "🧩-letterloops", cfg.PuzzleChannel)
	assert.Equal(t, "📖-story-sharing", cfg.StoryChannel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHATSTATS_INPUT", "export.csv")
	t.Setenv("CHATSTATS_OUTPUT", "out/report.json")
	t.Setenv("CHATSTATS_PUZZLE_CHANNEL", "riddles")
	t.Setenv("CHATSTATS_STORY_CHANNEL", "tales")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "export.csv", cfg.InputPath)
	assert.Equal(t, "out/report.json", cfg.OutputPath)
	assert.Equal(t, "riddles", cfg.PuzzleChannel)
	assert.Equal(t, "tales", cfg.StoryChannel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty input path",
			mutate:  func(c *Config) { c.InputPath = "" },
			wantErr: true,
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.OutputPath = "" },
			wantErr: true,
		},
		{
			name:    "empty channel name",
			mutate:  func(c *Config) { c.StoryChannel = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				InputPath:     "messages_1.csv",
				OutputPath:    "stats.json",
				PuzzleChannel: "puzzles",
				StoryChannel:  "stories",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, LogLevel())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, LogLevel())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, LogLevel())
}
