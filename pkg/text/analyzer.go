package text

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"github.com/sirupsen/logrus"
)

// Analyzer computes per-message text features: sentiment and readability.
// It is stateless apart from its logger and safe to share across aggregators.
type Analyzer struct {
	log *logrus.Logger
}

// NewAnalyzer creates an analyzer. A nil logger falls back to the
// standard logrus logger.
func NewAnalyzer(logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Analyzer{log: logger}
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]`)

// tokenize splits text into sentences and word tokens. Punctuation-only
// tokens are not words.
func (a *Analyzer) tokenize(text string) (sentences int, words []string, err error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return 0, nil, err
	}

	for _, tok := range doc.Tokens() {
		if wordPattern.MatchString(tok.Text) {
			words = append(words, tok.Text)
		}
	}
	return len(doc.Sentences()), words, nil
}

// SentenceCount returns the number of sentences in text.
// Tokenization failures are logged and counted as zero sentences.
func (a *Analyzer) SentenceCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	sentences, _, err := a.tokenize(text)
	if err != nil {
		a.log.WithError(err).Warn("Sentence tokenization failed")
		return 0
	}
	return sentences
}
