package cli

import (
	"github.com/yildizm/TrailMap/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// statusLine prefixes msg with the glyph for key
func statusLine(key, msg string) string {
	return GetEmoji(key) + " " + msg
}
