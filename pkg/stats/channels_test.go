package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vekslabs/chatstats/pkg/models"
	"github.com/vekslabs/chatstats/pkg/text"
)

func TestComputeChannelStats(t *testing.T) {
	analyzer := text.NewAnalyzer(nil)
	cfg := ChannelConfig{PuzzleChannel: "puzzles", StoryChannel: "stories"}

	messages := []models.Message{
		{Author: "A", Channel: "puzzles", Content: "solved it"},
		{Author: "B", Channel: "puzzles", Content: "me too"},
		{Author: "A", Channel: "puzzles", Content: "again"},
		{Author: "C", Channel: "stories", Content: "Once there was a dragon. It slept for years."},
		{Author: "D", Channel: "elsewhere", Content: "ignored entirely"},
	}

	got := ComputeChannelStats(messages, analyzer, cfg)

	// Two distinct players, three puzzle posts
	assert.Equal(t, 2, got.LetterLoops.NumberOfPlayers)
	assert.Equal(t, 3, got.LetterLoops.NumberOfPuzzlesSolved)

	assert.Equal(t, 1, got.StorySharing.NumberOfStoriesTold)
	assert.Equal(t, 44, got.StorySharing.LengthOfStoriesInCharacters)
	assert.Equal(t, 2, got.StorySharing.LengthOfStoriesInSentences)
	require.NotNil(t, got.StorySharing.AverageGradeLevel)
}

func TestComputeChannelStatsDefaults(t *testing.T) {
	analyzer := text.NewAnalyzer(nil)

	messages := []models.Message{
		{Author: "A", Channel: "🧩-letterloops", Content: "got it"},
		{Author: "B", Channel: "📖-story-sharing", Content: "A short tale."},
	}

	got := ComputeChannelStats(messages, analyzer, DefaultChannelConfig())
	assert.Equal(t, 1, got.LetterLoops.NumberOfPuzzlesSolved)
	assert.Equal(t, 1, got.StorySharing.NumberOfStoriesTold)
}

func TestChannelStatsGradeLevelFallback(t *testing.T) {
	analyzer := text.NewAnalyzer(nil)
	cfg := ChannelConfig{PuzzleChannel: "puzzles", StoryChannel: "stories"}

	t.Run("no stories", func(t *testing.T) {
		got := ComputeChannelStats(nil, analyzer, cfg)
		assert.Nil(t, got.StorySharing.AverageGradeLevel)
		assert.Zero(t, got.StorySharing.NumberOfStoriesTold)
	})

	t.Run("all grade levels absent", func(t *testing.T) {
		got := ComputeChannelStats([]models.Message{
			{Author: "A", Channel: "stories", Content: ""},
		}, analyzer, cfg)
		assert.Equal(t, 1, got.StorySharing.NumberOfStoriesTold)
		assert.Nil(t, got.StorySharing.AverageGradeLevel)
	})

	t.Run("absent grades excluded from the mean", func(t *testing.T) {
		withEmpty := ComputeChannelStats([]models.Message{
			{Author: "A", Channel: "stories", Content: "The cat sat."},
			{Author: "A", Channel: "stories", Content: ""},
		}, analyzer, cfg)
		withoutEmpty := ComputeChannelStats([]models.Message{
			{Author: "A", Channel: "stories", Content: "The cat sat."},
		}, analyzer, cfg)

		require.NotNil(t, withEmpty.StorySharing.AverageGradeLevel)
		require.NotNil(t, withoutEmpty.StorySharing.AverageGradeLevel)
		assert.Equal(t, *withoutEmpty.StorySharing.AverageGradeLevel, *withEmpty.StorySharing.AverageGradeLevel)
	})
}

func TestChannelStatsCharacterLength(t *testing.T) {
	analyzer := text.NewAnalyzer(nil)
	cfg := ChannelConfig{PuzzleChannel: "puzzles", StoryChannel: "stories"}

	// Length counts characters, not bytes
	got := ComputeChannelStats([]models.Message{
		{Author: "A", Channel: "stories", Content: "héllo 🎈"},
	}, analyzer, cfg)
	assert.Equal(t, 7, got.StorySharing.LengthOfStoriesInCharacters)
}
