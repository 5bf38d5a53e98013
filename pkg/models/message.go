package models

// Message represents a single row of a chat export
type Message struct {
	Author      string `json:"author"`
	Channel     string `json:"channel"`
	Content     string `json:"content"`
	AuthorIsBot bool   `json:"author_is_bot"`
}
