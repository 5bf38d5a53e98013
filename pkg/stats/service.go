package stats

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vekslabs/chatstats/pkg/ingestion"
	"github.com/vekslabs/chatstats/pkg/text"
)

// ServiceConfig contains configuration for the stats service
type ServiceConfig struct {
	InputPath  string
	OutputPath string
	Channels   ChannelConfig
	SkipErrors bool
}

// DefaultServiceConfig returns default service configuration
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		InputPath:  "messages_1.csv",
		OutputPath: "stats.json",
		Channels:   DefaultChannelConfig(),
		SkipErrors: false,
	}
}

// Service runs the complete reporting pipeline:
// load the export, compute the aggregates, write the report.
type Service struct {
	parser   *ingestion.Parser
	analyzer *text.Analyzer
	config   ServiceConfig
	log      *logrus.Logger
}

// NewService creates a new stats service
func NewService(logger *logrus.Logger, config ...ServiceConfig) *Service {
	cfg := DefaultServiceConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		parser:   ingestion.NewParser(ingestion.ParserConfig{SkipErrors: cfg.SkipErrors}),
		analyzer: text.NewAnalyzer(logger),
		config:   cfg,
		log:      logger,
	}
}

// Run executes one batch: load, aggregate, serialize. The report file is
// only written after every aggregate has been computed.
func (s *Service) Run() error {
	log := s.log.WithField("run_id", uuid.NewString())

	log.WithField("path", s.config.InputPath).Info("Loading chat export")
	messages, err := s.parser.ParseFile(s.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", s.config.InputPath, err)
	}

	total, parseErrors := s.parser.GetStats()
	log.WithFields(logrus.Fields{
		"rows":   total,
		"errors": parseErrors,
	}).Info("Export loaded")

	report := Report{
		GlobalStats:          ComputeGlobalStats(messages, s.analyzer),
		ChannelSpecificStats: ComputeChannelStats(messages, s.analyzer, s.config.Channels),
		IndividualStats:      ComputeIndividualStats(messages, s.analyzer),
	}
	log.WithField("authors", len(report.IndividualStats)).Info("Aggregation complete")

	if err := WriteReport(report, s.config.OutputPath); err != nil {
		return err
	}

	fmt.Printf("Statistics have been saved to %s\n", s.config.OutputPath)
	return nil
}
