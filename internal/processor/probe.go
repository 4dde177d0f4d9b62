package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type videoInfo struct {
	Width     int
	Height    int
	FrameRate string
}

type probeOutput struct {
	Streams []struct {
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
	} `json:"streams"`
}

// probeVideo reads the first video stream's frame size and rate
func (p *implProcessor) probeVideo(ctx context.Context, videoPath string) (videoInfo, error) {
	args := []string{
		"-v", "error",
		"-hide_banner",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate",
		"-of", "json",
		"--", videoPath,
	}

	out, err := p.executor.Execute(ctx, p.cfg.FFmpeg.ProbePath, args...)
	if err != nil {
		return videoInfo{}, fmt.Errorf("ffprobe: %w", err)
	}

	var parsed probeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return videoInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(parsed.Streams) == 0 {
		return videoInfo{}, fmt.Errorf("no video stream in %s", videoPath)
	}

	s := parsed.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return videoInfo{}, fmt.Errorf("invalid frame size %dx%d in %s", s.Width, s.Height, videoPath)
	}

	rate := strings.TrimSpace(s.RFrameRate)
	if rate == "0/0" {
		rate = ""
	}
	return videoInfo{Width: s.Width, Height: s.Height, FrameRate: rate}, nil
}
