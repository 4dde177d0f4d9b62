package caption

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Wrap greedily packs the words of text into lines whose advance in face is
// at most maxWidth pixels. A word that is wider than maxWidth on its own gets
// a line to itself and overflows. Text with no words yields no lines.
func Wrap(face font.Face, text string, maxWidth int) []string {
	limit := fixed.I(maxWidth)

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if font.MeasureString(face, candidate) <= limit {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
