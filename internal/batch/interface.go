package batch

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
)

// ErrLocked is returned when another run already holds the workspace lock.
var ErrLocked = errors.New("another transcriber run is in progress")

// Driver walks the videos folder and hands each untranscribed video to the
// processor, one at a time.
type Driver interface {
	// Pending lists videos that have no transcript yet, sorted by name.
	Pending() ([]string, error)
	// Run processes every pending video. The first failure stops the run.
	Run(ctx context.Context) (Summary, error)
	// ProcessFile handles one video, skipping non-videos and videos that
	// already have a transcript.
	ProcessFile(ctx context.Context, path string) error
}

// Summary describes one Run.
type Summary struct {
	RunID   string
	Results []processor.Result
	Elapsed time.Duration
}

// Count is the number of videos transcribed.
func (s Summary) Count() int {
	return len(s.Results)
}
