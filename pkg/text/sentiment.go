package text

import "strings"

// Sentiment holds the polarity and subjectivity of a piece of text.
// Polarity ranges from -1 (negative) to 1 (positive); subjectivity from
// 0 (objective) to 1 (subjective).
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon maps lowercase words to their polarity and subjectivity.
// Values follow the usual pattern-lexicon conventions: strongly valenced
// words near +/-1, mild ones near +/-0.3.
var sentimentLexicon = map[string]lexiconEntry{
	"amazing":       {0.6, 0.9},
	"angry":         {-0.5, 1.0},
	"annoying":      {-0.5, 0.8},
	"awesome":       {1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"bad":           {-0.7, 0.67},
	"beautiful":     {0.85, 1.0},
	"best":          {1.0, 0.3},
	"boring":        {-1.0, 1.0},
	"brilliant":     {0.9, 0.9},
	"clever":        {0.4, 0.7},
	"cool":          {0.35, 0.65},
	"delightful":    {0.8, 0.8},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"dumb":          {-0.5, 0.7},
	"easy":          {0.43, 0.83},
	"enjoy":         {0.4, 0.5},
	"enjoyed":       {0.4, 0.5},
	"excellent":     {1.0, 1.0},
	"excited":       {0.35, 0.75},
	"exciting":      {0.4, 0.8},
	"fantastic":     {0.4, 0.9},
	"favorite":      {0.5, 1.0},
	"fun":           {0.3, 0.2},
	"funny":         {0.25, 0.7},
	"glad":          {0.5, 1.0},
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"happy":         {0.8, 1.0},
	"hard":          {-0.29, 0.54},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.8, 0.9},
	"hates":         {-0.8, 0.9},
	"horrible":      {-1.0, 1.0},
	"impressive":    {0.8, 0.9},
	"interesting":   {0.5, 1.0},
	"love":          {0.5, 0.6},
	"loved":         {0.5, 0.6},
	"lovely":        {0.5, 0.8},
	"loves":         {0.5, 0.6},
	"mad":           {-0.62, 0.9},
	"nice":          {0.6, 1.0},
	"pathetic":      {-1.0, 1.0},
	"perfect":       {1.0, 1.0},
	"pleasant":      {0.73, 0.76},
	"poor":          {-0.4, 0.6},
	"sad":           {-0.5, 1.0},
	"scary":         {-0.5, 1.0},
	"smart":         {0.2, 0.6},
	"stupid":        {-0.8, 0.9},
	"superb":        {0.9, 0.9},
	"terrible":      {-1.0, 1.0},
	"tragic":        {-0.8, 0.9},
	"ugly":          {-0.7, 0.9},
	"unpleasant":    {-0.6, 0.7},
	"wonderful":     {1.0, 1.0},
	"worst":         {-1.0, 1.0},
	"wrong":         {-0.5, 0.5},
}

// negations flip and dampen the polarity of the word they precede.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"cannot":  true,
	"can't":   true,
	"don't":   true,
	"doesn't": true,
	"didn't":  true,
	"isn't":   true,
	"wasn't":  true,
	"won't":   true,
}

// intensifiers scale the polarity and subjectivity of the word they precede.
var intensifiers = map[string]float64{
	"very":      1.3,
	"really":    1.3,
	"extremely": 1.5,
	"so":        1.2,
	"quite":     1.1,
}

const negationDampening = -0.5

// Sentiment scores text with the lexicon: matched words are averaged,
// negations flip the following word's polarity, intensifiers scale it.
// Text with no lexicon matches, and empty text, scores neutral {0, 0}.
func (a *Analyzer) Sentiment(text string) Sentiment {
	var (
		polaritySum     float64
		subjectivitySum float64
		matches         int
	)

	negated := false
	intensity := 1.0
	for _, raw := range strings.Fields(text) {
		word := strings.ToLower(strings.Trim(raw, ".,;:!?\"'()[]{}"))
		if word == "" {
			continue
		}

		if negations[word] {
			negated = true
			continue
		}
		if scale, ok := intensifiers[word]; ok {
			intensity *= scale
			continue
		}

		entry, ok := sentimentLexicon[word]
		if ok {
			polarity := entry.polarity * intensity
			subjectivity := entry.subjectivity
			if negated {
				polarity *= negationDampening
			}
			polaritySum += polarity
			subjectivitySum += subjectivity
			matches++
		}

		// Negation and intensity only reach as far as the next word
		negated = false
		intensity = 1.0
	}

	if matches == 0 {
		return Sentiment{}
	}

	return Sentiment{
		Polarity:     clamp(polaritySum/float64(matches), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(matches), 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
