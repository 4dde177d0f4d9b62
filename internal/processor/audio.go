package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/wav"
)

type audioInfo struct {
	SampleRate int
	Channels   int
	Duration   time.Duration
}

// prepareAudio picks where the WAV goes and extracts it. The returned cleanup
// removes scratch audio and is a no-op when the WAV is kept.
func (p *implProcessor) prepareAudio(ctx context.Context, videoPath, base string, keep bool) (string, func(), error) {
	if keep {
		audioPath := filepath.Join(p.cfg.Paths.Audio, base+".wav")
		if err := os.MkdirAll(p.cfg.Paths.Audio, 0755); err != nil {
			return "", func() {}, fmt.Errorf("create audio dir: %w", err)
		}
		if err := p.extractAudio(ctx, videoPath, audioPath); err != nil {
			return "", func() {}, err
		}
		return audioPath, func() {}, nil
	}

	scratch, err := p.makeTempDir("audio-*")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { p.cleanupTempDir(ctx, scratch) }

	audioPath := filepath.Join(scratch, base+".wav")
	if err := p.extractAudio(ctx, videoPath, audioPath); err != nil {
		cleanup()
		return "", func() {}, err
	}
	return audioPath, cleanup, nil
}

// extractAudio extracts audio from video file and converts to 16kHz mono WAV,
// the only input format whisper-cli accepts
func (p *implProcessor) extractAudio(ctx context.Context, videoPath, audioPath string) error {
	p.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-vn", // No video
		"-sn",
		"-dn",
		"-ac", "1", // Mono
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return nil
}

// inspectAudio checks that ffmpeg produced a readable 16-bit PCM WAV and
// reports its length
func inspectAudio(path string) (audioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return audioInfo{}, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return audioInfo{}, fmt.Errorf("invalid wav file: %s", path)
	}
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return audioInfo{}, fmt.Errorf("unexpected wav encoding in %s: format %d, %d-bit", path, dec.WavAudioFormat, dec.BitDepth)
	}

	dur, err := dec.Duration()
	if err != nil {
		return audioInfo{}, fmt.Errorf("wav duration: %w", err)
	}

	return audioInfo{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Duration:   dur,
	}, nil
}
