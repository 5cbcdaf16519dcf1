package emoji

import "testing"

func TestGetEmojiFallback(t *testing.T) {
	defer SetEmojiDisabled(false)

	SetEmojiDisabled(false)
	if got := GetEmoji("summit"); got != "🏔️" {
		t.Errorf("GetEmoji(summit) = %q", got)
	}

	SetEmojiDisabled(true)
	if !IsEmojiDisabled() {
		t.Fatal("expected emoji to be disabled")
	}
	if got := GetEmoji("summit"); got != "[MAP]" {
		t.Errorf("GetEmoji(summit) fallback = %q", got)
	}
	if got := GetEmoji("nope"); got != "[?]" {
		t.Errorf("unknown key = %q", got)
	}
}
