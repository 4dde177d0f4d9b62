package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/media"
	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
)

const (
	questionWAV  = "Do you want to create a WAV file for this video? (y/n)"
	questionBurn = "Do you want to burn subtitles into this video? (y/n)"
)

func (d *implDriver) Pending() ([]string, error) {
	entries, err := os.ReadDir(d.cfg.Paths.Videos)
	if err != nil {
		return nil, fmt.Errorf("read videos dir: %w", err)
	}

	// ReadDir returns entries sorted by filename.
	var pending []string
	for _, e := range entries {
		if e.IsDir() || !media.IsVideo(e.Name()) {
			continue
		}
		path := filepath.Join(d.cfg.Paths.Videos, e.Name())
		done, err := d.hasTranscript(path)
		if err != nil {
			return nil, err
		}
		if !done {
			pending = append(pending, path)
		}
	}
	return pending, nil
}

func (d *implDriver) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	summary := Summary{RunID: uuid.New().String()}
	ctx = logger.WithRunID(ctx, summary.RunID)

	if err := d.ensureDirectories(); err != nil {
		return summary, err
	}

	release, err := d.acquire(ctx)
	if err != nil {
		return summary, err
	}
	defer release()

	pending, err := d.Pending()
	if err != nil {
		return summary, err
	}
	d.logger.Info(ctx, "Found %d video(s) to transcribe in %s", len(pending), d.cfg.Paths.Videos)

	for _, path := range pending {
		result, err := d.process(ctx, path)
		if err != nil {
			summary.Elapsed = time.Since(start)
			return summary, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		summary.Results = append(summary.Results, result)
	}
	summary.Elapsed = time.Since(start)

	if summary.Count() == 0 {
		fmt.Fprintln(d.out, "No videos to transcribe")
		return summary, nil
	}

	fmt.Fprintf(d.out, "\nTranscribed %d videos\n", summary.Count())
	fmt.Fprintln(d.out, renderSummary(summary))
	d.logger.Info(ctx, "Batch finished in %s", summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}

func (d *implDriver) ProcessFile(ctx context.Context, path string) error {
	if !media.IsVideo(path) {
		d.logger.Debug(ctx, "Ignoring non-video file: %s", path)
		return nil
	}

	ctx = logger.WithRunID(ctx, uuid.New().String())

	if err := d.ensureDirectories(); err != nil {
		return err
	}

	release, err := d.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	done, err := d.hasTranscript(path)
	if err != nil {
		return err
	}
	if done {
		d.logger.Info(ctx, "Skipping %s: transcript already exists", filepath.Base(path))
		return nil
	}

	result, err := d.process(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	fmt.Fprintf(d.out, "Transcribed %s (%d segments)\n", result.Video, result.Segments)
	return nil
}

// process asks the per-video questions and runs the processor.
func (d *implDriver) process(ctx context.Context, path string) (processor.Result, error) {
	name := filepath.Base(path)
	ctx = logger.WithVideo(ctx, name)

	fmt.Fprintf(d.out, "Transcribing %s\n", name)

	keep, err := d.prompter.Ask(questionWAV, d.cfg.Prompts.CreateWAV)
	if err != nil {
		return processor.Result{}, fmt.Errorf("prompt: %w", err)
	}
	burn, err := d.prompter.Ask(questionBurn, d.cfg.Prompts.BurnSubtitles)
	if err != nil {
		return processor.Result{}, fmt.Errorf("prompt: %w", err)
	}

	return d.processor.Process(ctx, path, processor.Options{KeepAudio: keep, BurnSubtitles: burn})
}

func (d *implDriver) hasTranscript(video string) (bool, error) {
	_, err := os.Stat(media.TranscriptPath(d.cfg.Paths.Transcripts, video))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check transcript for %s: %w", filepath.Base(video), err)
}

// ensureDirectories creates required directories if they don't exist
func (d *implDriver) ensureDirectories() error {
	dirs := []string{
		d.cfg.Paths.Videos,
		d.cfg.Paths.Transcripts,
		d.cfg.Paths.Audio,
		d.cfg.Paths.Subtitles,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
