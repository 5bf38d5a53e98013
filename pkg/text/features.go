package text

import "regexp"

var (
	linkPattern    = regexp.MustCompile(`http[s]?://`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

// ContainsLink reports whether the text contains an http or https link
func ContainsLink(text string) bool {
	return linkPattern.MatchString(text)
}

// ContainsMentions reports whether the text contains an @mention
func ContainsMentions(text string) bool {
	return mentionPattern.MatchString(text)
}
