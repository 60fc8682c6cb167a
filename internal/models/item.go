package models

import "strings"

// Item represents a card that can be ranked in a tier list
type Item struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	ImageBase64 string `json:"imageBase64,omitempty"` // Inline data URL
	ImageURL    string `json:"imageUrl,omitempty"`    // Remote reference
}

// HasImage reports whether the item carries an inline or remote image
func (i Item) HasImage() bool {
	return i.ImageBase64 != "" || i.ImageURL != ""
}

// IsInlineImage reports whether ref is an inline data URL rather than a link
func IsInlineImage(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}
