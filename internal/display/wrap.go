package display

import "github.com/muesli/reflow/wordwrap"

const DefaultWidth = 80

// Wrap word-wraps narration text to DefaultWidth.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
