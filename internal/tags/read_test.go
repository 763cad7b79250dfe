package tags

import (
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeSine renders a one second sine tone with ffmpeg, tagging it through
// ffmpeg's own metadata writer. The test is skipped when ffmpeg or the codec
// is missing.
func encodeSine(t *testing.T, name, codec string, metadata map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	args := []string{"-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", codec}
	for k, v := range metadata {
		args = append(args, "-metadata", k+"="+v)
	}
	args = append(args, path)

	if err := exec.Command("ffmpeg", args...).Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	return path
}

func TestFileReader_Formats(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		codec string
	}{
		{"flac", "tone.flac", "flac"},
		{"ogg vorbis", "tone.ogg", "libvorbis"},
		{"wav", "tone.wav", "pcm_s16le"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := encodeSine(t, tt.file, tt.codec, map[string]string{
				"artist": "Test Artist",
				"title":  "Test Title",
			})

			md, _ := FileReader{}.Read(path)
			assert.InDelta(t, time.Second, md.Duration, float64(100*time.Millisecond))
		})
	}
}

func TestReadTag_FLACVorbisComments(t *testing.T) {
	path := encodeSine(t, "tone.flac", "flac", map[string]string{
		"artist": "Test Artist",
		"title":  "Test Title",
	})

	got, err := readFLACVorbisComments(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Artist", got.Artist)
	assert.Equal(t, "Test Title", got.Title)

	got, err = ReadTag(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Artist", got.Artist)
}

func TestReadTag_OggVorbis(t *testing.T) {
	path := encodeSine(t, "tone.ogg", "libvorbis", map[string]string{
		"artist": "Test Artist",
		"title":  "Test Title",
	})

	got, err := readWithTaglib(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Artist", got.Artist)
	assert.Equal(t, "Test Title", got.Title)
}

func TestReadTag_FLACWithoutArtist(t *testing.T) {
	path := encodeSine(t, "tone.flac", "flac", map[string]string{"title": "Only Title"})

	md, ok := FileReader{}.Read(path)
	require.True(t, ok)
	assert.Empty(t, md.Artist)
	assert.Equal(t, "Only Title", md.Title)
}
