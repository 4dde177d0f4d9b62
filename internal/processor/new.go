package processor

import (
	"sync"

	"github.com/nguyentantai21042004/video-transcriber/internal/caption"
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/recognizer"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	executor   executor.Executor
	recognizer recognizer.Recognizer
	logger     logger.Logger

	rendererOnce sync.Once
	renderer     *caption.Renderer
}

// New creates a new Processor instance. The recognizer is shared by every
// video the processor handles.
func New(cfg *config.Config, exec executor.Executor, rec recognizer.Recognizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		executor:   exec,
		recognizer: rec,
		logger:     log,
	}
}
