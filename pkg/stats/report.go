package stats

import (
	"encoding/json"
	"fmt"
	"os"
)

// Report is the full analytics report written as the run's single output.
// Field names are part of the output schema and must not change.
type Report struct {
	GlobalStats          GlobalStats            `json:"global_stats"`
	ChannelSpecificStats ChannelSpecificStats   `json:"channel_specific_stats"`
	IndividualStats      map[string]AuthorStats `json:"individual_stats"`
}

// SentimentStats holds averaged sentiment over a set of messages
type SentimentStats struct {
	AveragePolarity     float64 `json:"average_polarity"`
	AverageSubjectivity float64 `json:"average_subjectivity"`
}

// HumanVsBotStats splits post counts by the author bot flag
type HumanVsBotStats struct {
	Human int `json:"human"`
	Bot   int `json:"bot"`
}

// GlobalStats covers the whole export
type GlobalStats struct {
	NumberOfPosts             int             `json:"number_of_posts"`
	NumberOfPostsByAuthor     map[string]int  `json:"number_of_posts_by_author"`
	NumberOfPostsByChannel    map[string]int  `json:"number_of_posts_by_channel"`
	NumberOfPostsByHumanVsBot HumanVsBotStats `json:"number_of_posts_by_human_vs_bot"`
	NumberOfLinksPosted       int             `json:"number_of_links_posted"`
	NumberOfMentions          int             `json:"number_of_mentions"`
	GlobalSentiment           SentimentStats  `json:"global_sentiment"`
}

// ChannelSpecificStats covers the two named channels of interest
type ChannelSpecificStats struct {
	LetterLoops  PuzzleChannelStats `json:"LetterLoops"`
	StorySharing StoryChannelStats  `json:"Story Sharing"`
}

// PuzzleChannelStats describes the puzzle channel; each post is one
// solved puzzle
type PuzzleChannelStats struct {
	NumberOfPlayers       int `json:"number_of_players"`
	NumberOfPuzzlesSolved int `json:"number_of_puzzles_solved"`
}

// StoryChannelStats describes the story channel. AverageGradeLevel is nil
// when no post has a computable grade level.
type StoryChannelStats struct {
	NumberOfStoriesTold         int      `json:"number_of_stories_told"`
	LengthOfStoriesInCharacters int      `json:"length_of_stories_in_characters"`
	LengthOfStoriesInSentences  int      `json:"length_of_stories_in_sentences"`
	AverageGradeLevel           *float64 `json:"average_grade_level"`
}

// AuthorStats describes a single author
type AuthorStats struct {
	ChannelsPostedTo []string       `json:"channels_posted_to"`
	AverageSentiment SentimentStats `json:"average_sentiment"`
}

// WriteReport serializes the report as indented JSON to path.
// Map keys are sorted by the encoder, so identical input yields
// byte-identical output.
func WriteReport(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
