package subtitle

import (
	"fmt"
	"math"
)

// msEpsilon absorbs binary noise so that ms/1000 maps back to ms.
const msEpsilon = 1e-6

// FormatTimestamp renders seconds as an SRT timestamp, HH:MM:SS,mmm.
// Milliseconds are truncated, never rounded. Negative input is treated as
// zero. Hours past 99 widen the first field.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	totalMs := int64(math.Floor(seconds*1000 + msEpsilon))
	total := totalMs / 1000
	millis := totalMs % 1000

	hours := total / 3600
	minutes := total % 3600 / 60
	secs := total % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
