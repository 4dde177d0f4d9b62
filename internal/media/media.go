// Package media holds the file naming rules shared by batch and watch mode.
package media

import (
	"path/filepath"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
}

// IsVideo reports whether path has a recognized video extension, ignoring case.
func IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// BaseName strips the directory and extension: videos/a.mp4 -> a.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// TranscriptPath is where the plain transcript for video lives. Its presence
// marks the video as done.
func TranscriptPath(transcriptsDir, video string) string {
	return filepath.Join(transcriptsDir, BaseName(video)+".txt")
}
