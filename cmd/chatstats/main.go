package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vekslabs/chatstats/internal/config"
	"github.com/vekslabs/chatstats/pkg/stats"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(config.LogLevel())

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	service := stats.NewService(logger, stats.ServiceConfig{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Channels: stats.ChannelConfig{
			PuzzleChannel: cfg.PuzzleChannel,
			StoryChannel:  cfg.StoryChannel,
		},
	})

	if err := service.Run(); err != nil {
		logger.WithError(err).Error("Run failed")
		os.Exit(1)
	}
}
