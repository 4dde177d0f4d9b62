package subtitle

import (
	"fmt"
	"strings"
)

// Segment is one recognized utterance, in seconds from the start of the audio.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Caption is a Segment on its way to the serializers and the renderer.
type Caption struct {
	Start float64
	End   float64
	Text  string
}

// Build turns recognizer output into the annotated plain-text transcript and
// the caption list. Order is preserved exactly; nothing is merged or dropped.
func Build(segs []Segment) (string, []Caption) {
	entries := make([]string, 0, len(segs))
	captions := make([]Caption, 0, len(segs))

	for _, seg := range segs {
		text := strings.TrimSpace(seg.Text)
		entries = append(entries, fmt.Sprintf("[%.2f - %.2f] %s", seg.Start, seg.End, text))
		captions = append(captions, Caption{Start: seg.Start, End: seg.End, Text: text})
	}

	return strings.Join(entries, "\n\n"), captions
}

// FormatSRT serializes captions as numbered SubRip blocks.
func FormatSRT(caps []Caption) string {
	var b strings.Builder
	for i, c := range caps {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, FormatTimestamp(c.Start), FormatTimestamp(c.End), c.Text)
	}
	return b.String()
}
