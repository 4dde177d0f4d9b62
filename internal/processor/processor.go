package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/video-transcriber/internal/media"
)

// Process orchestrates the entire video processing pipeline
func (p *implProcessor) Process(ctx context.Context, videoPath string, opts Options) (Result, error) {
	startTime := time.Now()
	filename := filepath.Base(videoPath)
	base := media.BaseName(videoPath)
	result := Result{Video: filename}

	p.logger.Info(ctx, "Starting video processing: %s (keep audio: %t, burn subtitles: %t)", videoPath, opts.KeepAudio, opts.BurnSubtitles)

	// Step 1: Extract audio
	audioPath, cleanup, err := p.prepareAudio(ctx, videoPath, base, opts.KeepAudio)
	if err != nil {
		return result, fmt.Errorf("extract audio: %w", err)
	}
	defer cleanup()
	if opts.KeepAudio {
		result.AudioPath = audioPath
	}

	// Step 2: Check what ffmpeg wrote before handing it to the model
	info, err := inspectAudio(audioPath)
	if err != nil {
		return result, fmt.Errorf("inspect audio: %w", err)
	}
	result.AudioSeconds = info.Duration.Seconds()
	p.logger.Debug(ctx, "Audio: %d Hz, %d channel(s), %s", info.SampleRate, info.Channels, info.Duration)

	// Step 3: Transcribe
	segs, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return result, fmt.Errorf("transcribe: %w", err)
	}
	result.Segments = len(segs)

	// Step 4: Transcript, SRT and optional docx
	captions, err := p.writeTranscripts(ctx, base, segs, &result)
	if err != nil {
		return result, fmt.Errorf("write transcripts: %w", err)
	}

	// Step 5: Burn captions into a re-encoded copy
	if opts.BurnSubtitles {
		outputPath := filepath.Join(p.cfg.Paths.Subtitles, base+".mp4")
		if err := p.burnSubtitles(ctx, videoPath, captions, outputPath); err != nil {
			return result, fmt.Errorf("burn subtitles: %w", err)
		}
		result.SubtitledPath = outputPath
	}

	p.logger.Info(ctx, "Processing completed in %s: %s (%d segments)", time.Since(startTime).Round(time.Millisecond), filename, result.Segments)
	return result, nil
}
