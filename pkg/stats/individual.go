package stats

import (
	"github.com/vekslabs/chatstats/pkg/models"
	"github.com/vekslabs/chatstats/pkg/text"
)

// ComputeIndividualStats folds the export into per-author stats: the
// channels each author posted to, in first-seen order, and their mean
// sentiment. Authors only exist here if they have at least one row.
func ComputeIndividualStats(messages []models.Message, analyzer *text.Analyzer) map[string]AuthorStats {
	channelsByAuthor := make(map[string][]string)
	seenChannel := make(map[string]map[string]bool)
	polaritiesByAuthor := make(map[string][]float64)
	subjectivitiesByAuthor := make(map[string][]float64)

	for _, msg := range messages {
		if seenChannel[msg.Author] == nil {
			seenChannel[msg.Author] = make(map[string]bool)
		}
		if !seenChannel[msg.Author][msg.Channel] {
			seenChannel[msg.Author][msg.Channel] = true
			channelsByAuthor[msg.Author] = append(channelsByAuthor[msg.Author], msg.Channel)
		}

		sentiment := analyzer.Sentiment(msg.Content)
		polaritiesByAuthor[msg.Author] = append(polaritiesByAuthor[msg.Author], sentiment.Polarity)
		subjectivitiesByAuthor[msg.Author] = append(subjectivitiesByAuthor[msg.Author], sentiment.Subjectivity)
	}

	individual := make(map[string]AuthorStats, len(channelsByAuthor))
	for author, channels := range channelsByAuthor {
		individual[author] = AuthorStats{
			ChannelsPostedTo: channels,
			AverageSentiment: meanSentiment(polaritiesByAuthor[author], subjectivitiesByAuthor[author]),
		}
	}
	return individual
}
