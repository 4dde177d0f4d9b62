package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
)

// NewConfig returns a validated config whose folders all live under a fresh
// temp dir. Prompts default to never so tests do not block on stdin.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Videos = filepath.Join(base, "videos")
	cfg.Paths.Transcripts = filepath.Join(base, "transcripts")
	cfg.Paths.Audio = filepath.Join(base, "wav_files")
	cfg.Paths.Subtitles = filepath.Join(base, "subtitles")
	cfg.Paths.Temp = filepath.Join(base, "tmp")
	cfg.Whisper.ModelPath = filepath.Join(base, "models", "ggml-test.bin")
	cfg.Caption.FontName = "NoSuchFontForTests"
	cfg.Caption.FontDirs = nil
	cfg.Prompts.Mode = config.PromptModeNever
	cfg.Watch.SettleMillis = 10

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return cfg
}
