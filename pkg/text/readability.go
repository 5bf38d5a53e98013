package text

import "strings"

const vowels = "aeiouy"

// CountSyllables estimates the syllable count of a single word by counting
// vowel groups, with a decrement for a trailing 'e' and a floor of one.
// The word must be non-empty; empty input returns 0 and callers are
// expected to filter empty tokens before calling.
func CountSyllables(word string) int {
	if word == "" {
		return 0
	}

	word = strings.ToLower(word)
	count := 0
	if strings.ContainsRune(vowels, rune(word[0])) {
		count++
	}
	for i := 1; i < len(word); i++ {
		if strings.ContainsRune(vowels, rune(word[i])) && !strings.ContainsRune(vowels, rune(word[i-1])) {
			count++
		}
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Flesch-Kincaid grade level coefficients
const (
	wordsPerSentenceWeight = 0.39
	syllablesPerWordWeight = 11.8
	gradeLevelOffset       = 15.59
)

// GradeLevel computes the Flesch-Kincaid grade level of text.
// The second return value is false when no grade level is computable:
// zero sentences, zero words, or a tokenization failure. Tokenization
// failures are logged and never propagated.
func (a *Analyzer) GradeLevel(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	sentences, words, err := a.tokenize(text)
	if err != nil {
		a.log.WithError(err).Warn("Tokenization failed, skipping grade level")
		return 0, false
	}
	if sentences == 0 || len(words) == 0 {
		return 0, false
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	return wordsPerSentenceWeight*wordsPerSentence + syllablesPerWordWeight*syllablesPerWord - gradeLevelOffset, true
}
