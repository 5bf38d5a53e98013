package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/vekslabs/chatstats/pkg/models"
	"github.com/vekslabs/chatstats/pkg/text"
)

// ComputeGlobalStats folds the whole export into GlobalStats.
// Every count is an exact row tally; sentiment means run over all rows,
// empty content scoring neutral.
func ComputeGlobalStats(messages []models.Message, analyzer *text.Analyzer) GlobalStats {
	byAuthor := make(map[string]int)
	byChannel := make(map[string]int)
	var humanVsBot HumanVsBotStats
	links := 0
	mentions := 0
	polarities := make([]float64, 0, len(messages))
	subjectivities := make([]float64, 0, len(messages))

	for _, msg := range messages {
		byAuthor[msg.Author]++
		byChannel[msg.Channel]++
		if msg.AuthorIsBot {
			humanVsBot.Bot++
		} else {
			humanVsBot.Human++
		}
		if text.ContainsLink(msg.Content) {
			links++
		}
		if text.ContainsMentions(msg.Content) {
			mentions++
		}

		sentiment := analyzer.Sentiment(msg.Content)
		polarities = append(polarities, sentiment.Polarity)
		subjectivities = append(subjectivities, sentiment.Subjectivity)
	}

	return GlobalStats{
		NumberOfPosts:             len(messages),
		NumberOfPostsByAuthor:     byAuthor,
		NumberOfPostsByChannel:    byChannel,
		NumberOfPostsByHumanVsBot: humanVsBot,
		NumberOfLinksPosted:       links,
		NumberOfMentions:          mentions,
		GlobalSentiment:           meanSentiment(polarities, subjectivities),
	}
}

// meanSentiment averages polarity and subjectivity series.
// Empty series average to neutral rather than NaN.
func meanSentiment(polarities, subjectivities []float64) SentimentStats {
	if len(polarities) == 0 {
		return SentimentStats{}
	}
	return SentimentStats{
		AveragePolarity:     stat.Mean(polarities, nil),
		AverageSubjectivity: stat.Mean(subjectivities, nil),
	}
}
