package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
)

// New creates a Watcher on dir. Each new video is handed to handler after
// settle has passed, one at a time.
func New(dir string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle < 0 {
		settle = 0
	}

	return &implWatcher{
		dir:     dir,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  settle,
	}, nil
}
