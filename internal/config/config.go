package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Paths   PathsConfig   `yaml:"paths"`
	Caption CaptionConfig `yaml:"caption"`
	Prompts PromptsConfig `yaml:"prompts"`
	Outputs OutputsConfig `yaml:"outputs"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	Encoder      string `yaml:"encoder"`
	Preset       string `yaml:"preset"`
	VideoBitrate string `yaml:"video_bitrate"`
	AudioCodec   string `yaml:"audio_codec"`
}

type PathsConfig struct {
	Videos      string `yaml:"videos"`
	Transcripts string `yaml:"transcripts"`
	Audio       string `yaml:"audio"`
	Subtitles   string `yaml:"subtitles"`
	// Temp is the parent for per-video scratch dirs; empty means the OS default.
	Temp string `yaml:"temp"`
}

type CaptionConfig struct {
	FontName string   `yaml:"font_name"`
	FontDirs []string `yaml:"font_dirs"`
	FontSize float64  `yaml:"font_size"`
	Color    string   `yaml:"color"`
}

// PromptsConfig controls the per-video questions. Mode is one of
// auto, interactive or never; the booleans are the answers used when
// nobody is asked or the answer is left empty. Both default to no.
type PromptsConfig struct {
	Mode          string `yaml:"mode"`
	CreateWAV     bool   `yaml:"create_wav"`
	BurnSubtitles bool   `yaml:"burn_subtitles"`
}

type OutputsConfig struct {
	Docx bool `yaml:"docx"`
}

type WatchConfig struct {
	SettleMillis int `yaml:"settle_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	PromptModeAuto        = "auto"
	PromptModeInteractive = "interactive"
	PromptModeNever       = "never"
)

// Default returns the configuration used when no config file is present.
// It mirrors the folder layout the tool has always used.
func Default() *Config {
	return &Config{
		Whisper: WhisperConfig{
			BinaryPath: "whisper-cli",
			ModelPath:  "models/ggml-base.bin",
			Language:   "auto",
			Threads:    4,
		},
		FFmpeg: FFmpegConfig{
			BinaryPath: "ffmpeg",
			ProbePath:  "ffprobe",
			Encoder:    "libx264",
			Preset:     "medium",
			AudioCodec: "copy",
		},
		Paths: PathsConfig{
			Videos:      "videos",
			Transcripts: "transcripts",
			Audio:       "wav_files",
			Subtitles:   "subtitles",
		},
		Caption: CaptionConfig{
			FontName: "Arial",
			FontDirs: []string{
				"/usr/share/fonts/truetype/msttcorefonts",
				"/usr/share/fonts/TTF",
				"/Library/Fonts",
				"/System/Library/Fonts/Supplemental",
				`C:\Windows\Fonts`,
			},
			FontSize: 24,
			Color:    "white",
		},
		Prompts: PromptsConfig{
			Mode: PromptModeAuto,
		},
		Watch: WatchConfig{
			SettleMillis: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Videos == "" {
		return fmt.Errorf("paths.videos is required")
	}
	if c.Paths.Transcripts == "" {
		return fmt.Errorf("paths.transcripts is required")
	}

	switch strings.ToLower(c.Prompts.Mode) {
	case "":
		c.Prompts.Mode = PromptModeAuto
	case PromptModeAuto, PromptModeInteractive, PromptModeNever:
		c.Prompts.Mode = strings.ToLower(c.Prompts.Mode)
	default:
		return fmt.Errorf("prompts.mode must be one of auto, interactive, never (got: %s)", c.Prompts.Mode)
	}

	if c.Caption.FontSize < 0 {
		return fmt.Errorf("caption.font_size must not be negative")
	}

	if c.Paths.Audio == "" {
		c.Paths.Audio = "wav_files"
	}
	if c.Paths.Subtitles == "" {
		c.Paths.Subtitles = "subtitles"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "copy"
	}
	if c.Caption.FontSize == 0 {
		c.Caption.FontSize = 24
	}
	if c.Caption.Color == "" {
		c.Caption.Color = "white"
	}
	if c.Watch.SettleMillis == 0 {
		c.Watch.SettleMillis = 500
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}
