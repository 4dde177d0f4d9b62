package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/video-transcriber/internal/subtitle"
)

// transcribe runs the shared recognizer over the extracted audio
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) ([]subtitle.Segment, error) {
	segs, err := p.recognizer.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		p.logger.Warn(ctx, "Recognizer returned no speech for %s", audioPath)
	}
	return segs, nil
}

// writeTranscripts writes the annotated transcript, then the SRT, then the
// optional docx. The transcript goes first: its presence is what marks a
// video as done.
func (p *implProcessor) writeTranscripts(ctx context.Context, base string, segs []subtitle.Segment, result *Result) ([]subtitle.Caption, error) {
	if err := os.MkdirAll(p.cfg.Paths.Transcripts, 0755); err != nil {
		return nil, fmt.Errorf("create transcripts dir: %w", err)
	}

	transcript, captions := subtitle.Build(segs)

	txtPath := filepath.Join(p.cfg.Paths.Transcripts, base+".txt")
	if err := os.WriteFile(txtPath, []byte(transcript), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}
	result.TranscriptPath = txtPath
	p.logger.Info(ctx, "Transcription saved to %s", txtPath)

	srtPath := filepath.Join(p.cfg.Paths.Transcripts, base+".srt")
	if err := os.WriteFile(srtPath, []byte(subtitle.FormatSRT(captions)), 0644); err != nil {
		return nil, fmt.Errorf("write srt: %w", err)
	}
	result.SRTPath = srtPath
	p.logger.Info(ctx, "Subtitles saved to %s", srtPath)

	if p.cfg.Outputs.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Transcripts, base+".docx")
		if err := subtitle.WriteDocx(base, captions, docxPath); err != nil {
			return nil, fmt.Errorf("write docx: %w", err)
		}
		result.DocxPath = docxPath
		p.logger.Info(ctx, "Word transcript saved to %s", docxPath)
	}

	return captions, nil
}
