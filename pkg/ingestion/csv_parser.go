package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vekslabs/chatstats/pkg/models"
)

// ParserConfig contains configuration for the CSV parser
type ParserConfig struct {
	SkipErrors bool // Whether to skip records with errors
}

// DefaultParserConfig returns default parser configuration
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		SkipErrors: false,
	}
}

// Parser handles parsing of chat export CSV files
type Parser struct {
	config       ParserConfig
	totalRecords int
	errorCount   int
	errors       []error
}

// NewParser creates a new CSV parser instance
func NewParser(config ...ParserConfig) *Parser {
	cfg := DefaultParserConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return &Parser{
		config: cfg,
		errors: make([]error, 0),
	}
}

// requiredColumns are the columns every export must carry
var requiredColumns = []string{"Author", "Channel", "Content", "AuthorIsBot"}

// ParseFile parses a chat export CSV file into messages
func (p *Parser) ParseFile(filename string) ([]models.Message, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse parses CSV data into messages
func (p *Parser) Parse(r io.Reader) ([]models.Message, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true // Handle quotes in fields
	reader.TrimLeadingSpace = true

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Map header columns
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.TrimSpace(col)] = i
	}

	// Validate required columns
	for _, col := range requiredColumns {
		if _, ok := columnMap[col]; !ok {
			return nil, fmt.Errorf("required column %s not found in CSV", col)
		}
	}

	p.totalRecords = 0
	p.errorCount = 0

	var messages []models.Message
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if p.config.SkipErrors {
				p.recordError(fmt.Errorf("failed to read record %d: %w", p.totalRecords+1, err))
				p.totalRecords++
				continue
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		p.totalRecords++
		messages = append(messages, p.parseRecord(record, columnMap))
	}

	return messages, nil
}

// parseRecord converts a CSV record to a Message
func (p *Parser) parseRecord(record []string, columnMap map[string]int) models.Message {
	getField := func(fieldName string) string {
		if idx, ok := columnMap[fieldName]; ok && idx < len(record) {
			return record[idx]
		}
		return ""
	}

	// AuthorIsBot defaults to false (human) when the cell is missing or malformed
	isBot := false
	if v := strings.TrimSpace(getField("AuthorIsBot")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			isBot = parsed
		}
	}

	return models.Message{
		Author:      strings.TrimSpace(getField("Author")),
		Channel:     strings.TrimSpace(getField("Channel")),
		Content:     getField("Content"), // missing cell coerces to ""
		AuthorIsBot: isBot,
	}
}

// recordError records a parsing error
func (p *Parser) recordError(err error) {
	p.errorCount++
	p.errors = append(p.errors, err)
}

// GetErrors returns all parsing errors
func (p *Parser) GetErrors() []error {
	return p.errors
}

// GetStats returns parsing statistics
func (p *Parser) GetStats() (total, errors int) {
	return p.totalRecords, p.errorCount
}
