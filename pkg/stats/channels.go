package stats

import (
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/vekslabs/chatstats/pkg/models"
	"github.com/vekslabs/chatstats/pkg/text"
)

// ChannelConfig names the two channels the channel-specific aggregator
// reports on. Rows in any other channel are ignored by it.
type ChannelConfig struct {
	PuzzleChannel string
	StoryChannel  string
}

// DefaultChannelConfig returns the channel names of the default export
func DefaultChannelConfig() ChannelConfig {
	return ChannelConfig{
		PuzzleChannel: "🧩-letterloops",
		StoryChannel:  "📖-story-sharing",
	}
}

// ComputeChannelStats folds the rows of the two configured channels into
// ChannelSpecificStats. The grade-level mean covers only posts with a
// computable grade level and is nil when there are none.
func ComputeChannelStats(messages []models.Message, analyzer *text.Analyzer, cfg ChannelConfig) ChannelSpecificStats {
	players := make(map[string]bool)
	puzzlesSolved := 0

	storiesTold := 0
	storyCharacters := 0
	storySentences := 0
	var gradeLevels []float64

	for _, msg := range messages {
		switch msg.Channel {
		case cfg.PuzzleChannel:
			players[msg.Author] = true
			puzzlesSolved++ // each post is one solved puzzle
		case cfg.StoryChannel:
			storiesTold++
			storyCharacters += utf8.RuneCountInString(msg.Content)
			storySentences += analyzer.SentenceCount(msg.Content)
			if grade, ok := analyzer.GradeLevel(msg.Content); ok {
				gradeLevels = append(gradeLevels, grade)
			}
		}
	}

	var averageGrade *float64
	if len(gradeLevels) > 0 {
		mean := stat.Mean(gradeLevels, nil)
		averageGrade = &mean
	}

	return ChannelSpecificStats{
		LetterLoops: PuzzleChannelStats{
			NumberOfPlayers:       len(players),
			NumberOfPuzzlesSolved: puzzlesSolved,
		},
		StorySharing: StoryChannelStats{
			NumberOfStoriesTold:         storiesTold,
			LengthOfStoriesInCharacters: storyCharacters,
			LengthOfStoriesInSentences:  storySentences,
			AverageGradeLevel:           averageGrade,
		},
	}
}
