package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/subtitle"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

// Options configures the whisper.cpp command line recognizer.
type Options struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Prompt     string
	Threads    int
}

type whisperModel struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
	lookPath func(string) (string, error)

	once    sync.Once
	binary  string
	loadErr error
	loads   int
	closed  atomic.Bool
}

// NewWhisper returns a Recognizer backed by whisper-cli. Nothing is checked
// until the first Transcribe call.
func NewWhisper(opts Options, runner executor.Executor, log logger.Logger) Recognizer {
	return newWhisper(opts, runner, log, defaultLookPath)
}

func newWhisper(opts Options, runner executor.Executor, log logger.Logger, lookPath func(string) (string, error)) *whisperModel {
	return &whisperModel{
		opts:     opts,
		executor: runner,
		logger:   log,
		lookPath: lookPath,
	}
}

func defaultLookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// load runs once per model. A failure sticks: every later call sees it.
func (m *whisperModel) load(ctx context.Context) {
	m.loads++

	if _, err := os.Stat(m.opts.ModelPath); err != nil {
		m.loadErr = fmt.Errorf("%w: %s: %v", ErrModelNotFound, m.opts.ModelPath, err)
		return
	}
	binary, err := m.lookPath(m.opts.BinaryPath)
	if err != nil {
		m.loadErr = fmt.Errorf("resolve whisper binary %q: %w", m.opts.BinaryPath, err)
		return
	}
	m.binary = binary
	m.logger.Info(ctx, "Whisper model ready: %s (binary %s)", m.opts.ModelPath, binary)
}

func (m *whisperModel) Transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	m.once.Do(func() { m.load(ctx) })
	if m.loadErr != nil {
		return nil, m.loadErr
	}

	// whisper-cli appends .json to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	jsonPath := outputPrefix + ".json"

	threads := m.opts.Threads
	if threads <= 0 {
		threads = 4
	}

	args := []string{
		"-m", m.opts.ModelPath,
		"-f", audioPath,
		"-l", m.opts.Language,
		"-t", strconv.Itoa(threads),
		"-oj",
		"--output-file", outputPrefix,
	}
	if m.opts.Prompt != "" {
		args = append(args, "--prompt", m.opts.Prompt)
	}

	m.logger.Info(ctx, "Starting transcription with %d threads: %s", threads, audioPath)

	defer func() {
		if err := os.Remove(jsonPath); err != nil && !os.IsNotExist(err) {
			m.logger.Warn(ctx, "Failed to remove whisper output %s: %v", jsonPath, err)
		}
	}()

	if _, err := m.executor.Execute(ctx, m.binary, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	segs, err := readWhisperJSON(jsonPath)
	if err != nil {
		return nil, err
	}

	m.logger.Info(ctx, "Transcription completed: %d segments", len(segs))
	return segs, nil
}

func (m *whisperModel) Close() error {
	m.closed.Store(true)
	return nil
}

type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func readWhisperJSON(path string) ([]subtitle.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	segs := make([]subtitle.Segment, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		segs = append(segs, subtitle.Segment{
			Start: float64(item.Offsets.From) / 1000,
			End:   float64(item.Offsets.To) / 1000,
			Text:  norm.NFC.String(strings.TrimSpace(item.Text)),
		})
	}
	return segs, nil
}
