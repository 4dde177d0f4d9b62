package processor

import "context"

// Processor defines the interface for video processing operations
type Processor interface {
	Process(ctx context.Context, videoPath string, opts Options) (Result, error)
}

// Options are the per-video choices the operator makes
type Options struct {
	// KeepAudio writes the extracted WAV next to the other outputs instead of
	// a scratch dir that is removed afterwards
	KeepAudio     bool
	BurnSubtitles bool
}

// Result lists what one Process call produced. Paths are empty for outputs
// that were not requested.
type Result struct {
	Video          string
	Segments       int
	AudioSeconds   float64
	TranscriptPath string
	SRTPath        string
	DocxPath       string
	AudioPath      string
	SubtitledPath  string
}
