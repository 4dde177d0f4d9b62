package recognizer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/video-transcriber/internal/subtitle"
)

var (
	ErrModelNotFound = errors.New("whisper model not found")
	ErrClosed        = errors.New("recognizer closed")
)

// Recognizer turns an audio file into ordered, timed segments. A Recognizer
// is loaded on first use and reused for every video in a batch; call Close
// once the batch is done.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, error)
	Close() error
}
