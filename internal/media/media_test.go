package media

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVideo(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp4", true},
		{"videos/clip.MOV", true},
		{"Talk.Mp4", true},
		{"notes.txt", false},
		{"movie.mkv", false},
		{"mp4", false},
		{".mp4.part", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVideo(tt.path))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "a", BaseName("videos/a.mp4"))
	assert.Equal(t, "my.talk", BaseName("/x/my.talk.mov"))
	assert.Equal(t, "plain", BaseName("plain"))
}

func TestTranscriptPath(t *testing.T) {
	assert.Equal(t, filepath.Join("transcripts", "a.txt"), TranscriptPath("transcripts", filepath.Join("videos", "a.mp4")))
}
