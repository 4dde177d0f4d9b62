package batch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
	"github.com/nguyentantai21042004/video-transcriber/internal/testsupport"
)

type processCall struct {
	path string
	opts processor.Options
}

// fakeProcessor writes the transcript like the real one so skip logic sees it.
type fakeProcessor struct {
	cfg   *config.Config
	fail  map[string]error
	calls []processCall
}

func (f *fakeProcessor) Process(_ context.Context, videoPath string, opts processor.Options) (processor.Result, error) {
	f.calls = append(f.calls, processCall{path: videoPath, opts: opts})
	name := filepath.Base(videoPath)
	if err := f.fail[name]; err != nil {
		return processor.Result{}, err
	}

	txt := filepath.Join(f.cfg.Paths.Transcripts, strings.TrimSuffix(name, filepath.Ext(name))+".txt")
	if err := os.WriteFile(txt, []byte("[0.00 - 1.00] hi"), 0o644); err != nil {
		return processor.Result{}, err
	}
	return processor.Result{Video: name, Segments: 1, AudioSeconds: 1, TranscriptPath: txt}, nil
}

func (f *fakeProcessor) names() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, filepath.Base(c.path))
	}
	return out
}

type fixture struct {
	cfg    *config.Config
	proc   *fakeProcessor
	out    *bytes.Buffer
	driver Driver
}

func newFixture(t *testing.T, prompter Prompter) *fixture {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Paths.Videos, 0o755))
	require.NoError(t, os.MkdirAll(cfg.Paths.Transcripts, 0o755))

	f := &fixture{cfg: cfg, proc: &fakeProcessor{cfg: cfg}, out: &bytes.Buffer{}}
	f.driver = New(cfg, f.proc, prompter, logger.NewWithWriter("debug", "json", io.Discard), f.out)
	return f
}

func (f *fixture) video(t *testing.T, names ...string) {
	for _, n := range names {
		testsupport.Touch(t, filepath.Join(f.cfg.Paths.Videos, n))
	}
}

func (f *fixture) transcript(t *testing.T, names ...string) {
	for _, n := range names {
		testsupport.Touch(t, filepath.Join(f.cfg.Paths.Transcripts, n))
	}
}

func TestPending(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4", "B.MOV", "c.mp4", "notes.txt", "d.mkv")
	require.NoError(t, os.Mkdir(filepath.Join(f.cfg.Paths.Videos, "dir.mp4"), 0o755))
	f.transcript(t, "a.txt")

	pending, err := f.driver.Pending()
	require.NoError(t, err)

	var names []string
	for _, p := range pending {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"B.MOV", "c.mp4"}, names)
}

func TestPendingMissingDir(t *testing.T) {
	f := newFixture(t, Defaults{})
	require.NoError(t, os.RemoveAll(f.cfg.Paths.Videos))

	_, err := f.driver.Pending()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read videos dir")
}

func TestRunNothingToDo(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4")
	f.transcript(t, "a.txt")

	summary, err := f.driver.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Count())
	assert.Equal(t, "No videos to transcribe\n", f.out.String())
	assert.Empty(t, f.proc.calls)
}

func TestRunProcessesPendingInOrder(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.cfg.Prompts.CreateWAV = true
	f.cfg.Prompts.BurnSubtitles = false
	f.video(t, "b.mov", "a.mp4")

	summary, err := f.driver.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.mp4", "b.mov"}, f.proc.names())
	for _, c := range f.proc.calls {
		assert.Equal(t, processor.Options{KeepAudio: true}, c.opts)
	}

	assert.Equal(t, 2, summary.Count())
	_, err = uuid.Parse(summary.RunID)
	assert.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "Transcribing a.mp4\n")
	assert.Contains(t, out, "Transcribing b.mov\n")
	assert.Contains(t, out, "\nTranscribed 2 videos\n")
	assert.Less(t, strings.Index(out, "Transcribing a.mp4"), strings.Index(out, "Transcribing b.mov"))
	assert.Contains(t, out, "Segments")
	assert.Contains(t, out, "a.txt")

	// A second run finds nothing left.
	f.out.Reset()
	summary, err = f.driver.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count())
	assert.Equal(t, "No videos to transcribe\n", f.out.String())
}

func TestRunStopsOnFirstError(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4", "b.mp4")
	f.proc.fail = map[string]error{"a.mp4": errors.New("ffmpeg exploded")}

	summary, err := f.driver.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.mp4")
	assert.Contains(t, err.Error(), "ffmpeg exploded")
	assert.Equal(t, []string{"a.mp4"}, f.proc.names())
	assert.Equal(t, 0, summary.Count())
	assert.NotContains(t, f.out.String(), "Transcribed")
}

func TestRunCreatesDirectories(t *testing.T) {
	f := newFixture(t, Defaults{})
	require.NoError(t, os.RemoveAll(f.cfg.Paths.Videos))
	require.NoError(t, os.RemoveAll(f.cfg.Paths.Transcripts))

	_, err := f.driver.Run(context.Background())
	require.NoError(t, err)

	for _, dir := range []string{f.cfg.Paths.Videos, f.cfg.Paths.Transcripts, f.cfg.Paths.Audio, f.cfg.Paths.Subtitles} {
		assert.DirExists(t, dir)
	}
}

func TestRunFailsWhileLocked(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4")

	other := flock.New(filepath.Join(f.cfg.Paths.Transcripts, lockFileName))
	ok, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.driver.Run(context.Background())
	require.ErrorIs(t, err, ErrLocked)
	assert.Empty(t, f.proc.calls)

	require.NoError(t, other.Unlock())
	summary, err := f.driver.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count())
}

func TestRunUsesPromptAnswers(t *testing.T) {
	in := strings.NewReader("n\ny\n")
	var prompts bytes.Buffer
	f := newFixture(t, NewInteractive(in, &prompts))
	f.video(t, "a.mp4")

	_, err := f.driver.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, f.proc.calls, 1)
	assert.Equal(t, processor.Options{KeepAudio: false, BurnSubtitles: true}, f.proc.calls[0].opts)
	assert.Equal(t, questionWAV+" "+questionBurn+" ", prompts.String())
}

func TestProcessFile(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4", "b.mp4", "readme.md")
	f.transcript(t, "b.txt")
	ctx := context.Background()

	require.NoError(t, f.driver.ProcessFile(ctx, filepath.Join(f.cfg.Paths.Videos, "readme.md")))
	require.NoError(t, f.driver.ProcessFile(ctx, filepath.Join(f.cfg.Paths.Videos, "b.mp4")))
	assert.Empty(t, f.proc.calls)

	require.NoError(t, f.driver.ProcessFile(ctx, filepath.Join(f.cfg.Paths.Videos, "a.mp4")))
	assert.Equal(t, []string{"a.mp4"}, f.proc.names())
	assert.Contains(t, f.out.String(), "Transcribing a.mp4\n")

	// Done now, so a repeated event is a no-op.
	require.NoError(t, f.driver.ProcessFile(ctx, filepath.Join(f.cfg.Paths.Videos, "a.mp4")))
	assert.Len(t, f.proc.calls, 1)
}

func TestProcessFileError(t *testing.T) {
	f := newFixture(t, Defaults{})
	f.video(t, "a.mp4")
	f.proc.fail = map[string]error{"a.mp4": errors.New("no audio stream")}

	err := f.driver.ProcessFile(context.Background(), filepath.Join(f.cfg.Paths.Videos, "a.mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio stream")
}
