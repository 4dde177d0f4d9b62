package batch

import (
	"io"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/processor"
)

const lockFileName = ".batch.lock"

type implDriver struct {
	cfg       *config.Config
	processor processor.Processor
	prompter  Prompter
	logger    logger.Logger
	out       io.Writer
	lock      *flock.Flock
}

// New creates a Driver. Progress text and the summary table go to out.
func New(cfg *config.Config, proc processor.Processor, prompter Prompter, log logger.Logger, out io.Writer) Driver {
	return &implDriver{
		cfg:       cfg,
		processor: proc,
		prompter:  prompter,
		logger:    log,
		out:       out,
		lock:      flock.New(filepath.Join(cfg.Paths.Transcripts, lockFileName)),
	}
}
