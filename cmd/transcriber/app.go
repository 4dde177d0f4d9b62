package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/video-transcriber/internal/batch"
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
	"github.com/nguyentantai21042004/video-transcriber/internal/recognizer"
	"github.com/nguyentantai21042004/video-transcriber/internal/watcher"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

type app struct {
	cfg        *config.Config
	log        logger.Logger
	recognizer recognizer.Recognizer
	driver     batch.Driver
}

// newApp loads configuration and wires the pipeline. A missing config file
// is only tolerated when the path was not given explicitly.
func newApp(configPath string, explicit bool, stdin *os.File, stdout io.Writer) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	exec := executor.New()

	rec := recognizer.NewWhisper(recognizer.Options{
		BinaryPath: cfg.Whisper.BinaryPath,
		ModelPath:  cfg.Whisper.ModelPath,
		Language:   cfg.Whisper.Language,
		Prompt:     cfg.Whisper.Prompt,
		Threads:    cfg.Whisper.Threads,
	}, exec, log)

	proc := processor.New(cfg, exec, rec, log)
	prompter := batch.NewPrompter(cfg.Prompts.Mode, stdin, stdout)

	return &app{
		cfg:        cfg,
		log:        log,
		recognizer: rec,
		driver:     batch.New(cfg, proc, prompter, log, stdout),
	}, nil
}

func (a *app) runBatch(ctx context.Context) error {
	a.log.Debug(ctx, "Configuration loaded: videos=%s transcripts=%s model=%s", a.cfg.Paths.Videos, a.cfg.Paths.Transcripts, a.cfg.Whisper.ModelPath)

	if _, err := a.driver.Run(ctx); err != nil {
		a.log.Error(ctx, "Batch failed: %v", err)
		return err
	}
	return nil
}

// watch runs one batch, then handles new videos until SIGINT or SIGTERM.
func (a *app) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.runBatch(ctx); err != nil {
		return err
	}

	settle := time.Duration(a.cfg.Watch.SettleMillis) * time.Millisecond
	w, err := watcher.New(a.cfg.Paths.Videos, a.driver.ProcessFile, a.log, settle)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "Watching %s for new videos. Press Ctrl+C to stop", a.cfg.Paths.Videos)

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		a.log.Info(ctx, "Shutdown signal received")
		return nil
	}
	return err
}

func (a *app) close(ctx context.Context) {
	if err := a.recognizer.Close(); err != nil {
		a.log.Warn(ctx, "Failed to close recognizer: %v", err)
	}
}
