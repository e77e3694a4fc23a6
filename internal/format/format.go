// Package format turns raw field values into display strings.
package format

import (
	"fmt"
	"strings"
)

// BreakLines wraps a space-delimited string into lines shorter than maxWidth.
// Words are never split: a word that is longer than maxWidth gets a line of its own.
// Each word is followed by a single space, including the last word on a line.
func BreakLines(text string, maxWidth int) string {
	var b strings.Builder
	var col int
	for _, word := range strings.Split(text, " ") {
		if col > 0 && col+len(word)+1 >= maxWidth {
			b.WriteByte('\n')
			col = 0
		}
		b.WriteString(word)
		b.WriteByte(' ')
		col += len(word) + 1
	}
	return b.String()
}

// FormatDuration formats a duration in milliseconds as HH:MM:SS.mmm.
// Hours are not capped at 24. Negative durations are not supported.
func FormatDuration(ms int) string {
	h := ms / 3_600_000
	ms %= 3_600_000
	m := ms / 60_000
	ms %= 60_000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
