package processor

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-transcriber/internal/caption"
	"github.com/nguyentantai21042004/video-transcriber/internal/subtitle"
)

const (
	softwareEncoder    = "libx264"
	fallbackAudioCodec = "aac"
	concatScript       = "captions.ffconcat"
	blankOverlay       = "blank.png"
	tempOutputName     = "output.mp4"
)

type encodeAttempt struct {
	videoCodec string
	audioCodec string
}

// burnSubtitles composites the rendered captions onto the video and
// re-encodes it at the source frame rate. The captions reach ffmpeg as a
// single concat-demuxer input, one image per span, so ffmpeg holds one
// decoded overlay at a time however many captions there are. Overlays and
// the concat script live in a per-video temp dir and are passed by relative
// name.
func (p *implProcessor) burnSubtitles(ctx context.Context, videoPath string, captions []subtitle.Caption, outputPath string) error {
	info, err := p.probeVideo(ctx, videoPath)
	if err != nil {
		return err
	}

	spans := overlayTimeline(captions)
	p.logger.Info(ctx, "Burning %d captions into %s (%dx%d @ %s)", len(captions), videoPath, info.Width, info.Height, info.FrameRate)

	tempDir, err := p.makeTempDir("burn-*")
	if err != nil {
		return err
	}
	defer p.cleanupTempDir(ctx, tempDir)

	if len(spans) > 0 {
		if err := p.renderOverlays(ctx, tempDir, captions, spans, info); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(tempDir, concatScript), []byte(concatList(spans)), 0644); err != nil {
			return fmt.Errorf("write concat script: %w", err)
		}
	}

	absVideoPath, err := filepath.Abs(videoPath)
	if err != nil {
		return fmt.Errorf("resolve video path: %w", err)
	}

	var encodeErr error
	for i, attempt := range p.encodeAttempts() {
		if i > 0 {
			p.logger.Warn(ctx, "Encoding failed, retrying with video %s, audio %s: %v", attempt.videoCodec, attempt.audioCodec, encodeErr)
		}
		args := p.encodeArgs(absVideoPath, len(spans) > 0, info, attempt)
		p.logger.Debug(ctx, "FFmpeg command in dir %s: %s %s", tempDir, p.cfg.FFmpeg.BinaryPath, strings.Join(args, " "))

		if _, encodeErr = p.executor.ExecuteInDir(ctx, tempDir, p.cfg.FFmpeg.BinaryPath, args...); encodeErr == nil {
			break
		}
	}
	if encodeErr != nil {
		return fmt.Errorf("encode subtitled video: %w", encodeErr)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create subtitles dir: %w", err)
	}
	if err := moveFile(filepath.Join(tempDir, tempOutputName), outputPath); err != nil {
		return fmt.Errorf("move output to final location: %w", err)
	}

	p.logger.Info(ctx, "Subtitle burned successfully: %s", outputPath)
	return nil
}

// encodeAttempts lists the codec pairs to try in order: the configured
// encoder, then libx264, then libx264 with AAC when stream copy of the
// source audio is not accepted by the mp4 muxer.
func (p *implProcessor) encodeAttempts() []encodeAttempt {
	audio := p.cfg.FFmpeg.AudioCodec
	attempts := []encodeAttempt{{videoCodec: p.cfg.FFmpeg.Encoder, audioCodec: audio}}
	if p.cfg.FFmpeg.Encoder != softwareEncoder {
		attempts = append(attempts, encodeAttempt{videoCodec: softwareEncoder, audioCodec: audio})
	}
	if audio == "copy" {
		attempts = append(attempts, encodeAttempt{videoCodec: softwareEncoder, audioCodec: fallbackAudioCodec})
	}
	return attempts
}

// overlaySpan is one stretch of the overlay timeline: caption index shows
// for millis, or index -1 shows nothing.
type overlaySpan struct {
	index  int
	millis int64
}

// overlayTimeline lays the captions out back to back from t=0, filling gaps
// with a blank span. Overlapping captions are cut at the previous end and
// empty ones are dropped.
func overlayTimeline(captions []subtitle.Caption) []overlaySpan {
	var (
		spans  []overlaySpan
		cursor int64
	)
	for i, c := range captions {
		start, end := toMillis(c.Start), toMillis(c.End)
		if start < cursor {
			start = cursor
		}
		if end <= start {
			continue
		}
		if start > cursor {
			spans = append(spans, overlaySpan{index: -1, millis: start - cursor})
		}
		spans = append(spans, overlaySpan{index: i, millis: end - start})
		cursor = end
	}
	return spans
}

func toMillis(seconds float64) int64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return int64(math.Round(seconds * 1000))
}

func overlayName(index int) string {
	if index < 0 {
		return blankOverlay
	}
	return fmt.Sprintf("caption_%05d.png", index+1)
}

// concatList is the ffconcat script for spans. The last image is listed a
// second time so the demuxer honours its duration.
func concatList(spans []overlaySpan) string {
	var b strings.Builder
	b.WriteString("ffconcat version 1.0\n")
	for _, s := range spans {
		fmt.Fprintf(&b, "file '%s'\nduration %d.%03d\n", overlayName(s.index), s.millis/1000, s.millis%1000)
	}
	if len(spans) > 0 {
		fmt.Fprintf(&b, "file '%s'\n", overlayName(spans[len(spans)-1].index))
	}
	return b.String()
}

// renderOverlays writes the image for every span, once per name
func (p *implProcessor) renderOverlays(ctx context.Context, dir string, captions []subtitle.Caption, spans []overlaySpan, info videoInfo) error {
	renderer := p.captionRenderer(ctx)

	written := make(map[string]bool, len(spans))
	for _, s := range spans {
		name := overlayName(s.index)
		if written[name] {
			continue
		}
		text := ""
		if s.index >= 0 {
			text = captions[s.index].Text
		}
		if err := writePNG(filepath.Join(dir, name), renderer.Render(text, info.Width, info.Height)); err != nil {
			return fmt.Errorf("write overlay %s: %w", name, err)
		}
		written[name] = true
	}
	return nil
}

// captionRenderer resolves the font once per processor. A missing font or a
// bad color degrades instead of failing the video.
func (p *implProcessor) captionRenderer(ctx context.Context) *caption.Renderer {
	p.rendererOnce.Do(func() {
		cc := p.cfg.Caption
		face, fallback := caption.ResolveFace(cc.FontName, cc.FontSize, cc.FontDirs)
		if fallback {
			p.logger.Warn(ctx, "Font %q not found, using the default bitmap font (size ignored)", cc.FontName)
		}

		fill, err := caption.ParseColor(cc.Color)
		if err != nil {
			p.logger.Warn(ctx, "Invalid caption color %q, using white: %v", cc.Color, err)
		}
		p.renderer = caption.NewRenderer(face, fill)
	})
	return p.renderer
}

// overlayGraph composites the caption stream over the video. The caption
// stream ends with the last caption; after that the video passes through.
func overlayGraph(withOverlay bool) string {
	if !withOverlay {
		return "[0:v]null[v]"
	}
	return "[0:v][1:v]overlay=0:0:eof_action=pass[v]"
}

func (p *implProcessor) encodeArgs(videoPath string, withOverlay bool, info videoInfo, attempt encodeAttempt) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
	}
	if withOverlay {
		args = append(args, "-f", "concat", "-safe", "0", "-i", concatScript)
	}

	args = append(args,
		"-filter_complex", overlayGraph(withOverlay),
		"-map", "[v]",
		"-map", "0:a?",
		"-c:v", attempt.videoCodec,
	)

	if attempt.videoCodec == softwareEncoder {
		args = append(args, "-preset", p.cfg.FFmpeg.Preset, "-crf", "23")
	} else if p.cfg.FFmpeg.VideoBitrate != "" {
		args = append(args, "-b:v", p.cfg.FFmpeg.VideoBitrate)
	}
	if info.FrameRate != "" {
		args = append(args, "-r", info.FrameRate)
	}

	args = append(args,
		"-pix_fmt", "yuv420p",
		"-c:a", attempt.audioCodec,
		tempOutputName,
	)
	return args
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
