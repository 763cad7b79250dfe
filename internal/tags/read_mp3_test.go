package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	// MP3 frame header (MPEG1 Layer3, 128kbps, 44100Hz, stereo) + padding
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// tagMP3 writes the given ID3v2 text frames into path.
func tagMP3(t *testing.T, path string, frames map[string]string) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	for id, text := range frames {
		tag.AddTextFrame(id, tag.DefaultEncoding(), text)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save tags: %v", err)
	}
}

func TestReadMP3WithID3v2(t *testing.T) {
	tests := []struct {
		name       string
		frames     map[string]string
		wantArtist string
		wantTitle  string
	}{
		{
			name:       "artist and title",
			frames:     map[string]string{"TPE1": "Test Artist", "TIT2": "Test Title"},
			wantArtist: "Test Artist",
			wantTitle:  "Test Title",
		},
		{
			name:       "artist falls back to album artist",
			frames:     map[string]string{"TPE2": "Album Artist", "TIT2": "Song"},
			wantArtist: "Album Artist",
			wantTitle:  "Song",
		},
		{
			name:       "artist preferred over album artist",
			frames:     map[string]string{"TPE1": "Artist", "TPE2": "Album Artist"},
			wantArtist: "Artist",
		},
		{
			name:       "whitespace trimmed",
			frames:     map[string]string{"TPE1": "  Spaced  ", "TIT2": "\tTabbed\t"},
			wantArtist: "Spaced",
			wantTitle:  "Tabbed",
		},
		{
			name:       "unicode",
			frames:     map[string]string{"TPE1": "Sigur Rós", "TIT2": "Hoppípolla"},
			wantArtist: "Sigur Rós",
			wantTitle:  "Hoppípolla",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.mp3")
			createMinimalMP3(t, path)
			tagMP3(t, path, tt.frames)

			got, err := readMP3WithID3v2(path)
			if err != nil {
				t.Fatalf("readMP3WithID3v2 failed: %v", err)
			}
			if got.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", got.Artist, tt.wantArtist)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestReadMP3WithID3v2_NoFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.mp3")
	createMinimalMP3(t, path)

	if _, err := readMP3WithID3v2(path); err == nil {
		t.Error("expected an error for an untagged file")
	}
}

func TestReadTag_MP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, path)
	tagMP3(t, path, map[string]string{"TPE1": "Band", "TIT2": "Song"})

	got, err := ReadTag(path)
	if err != nil {
		t.Fatalf("ReadTag failed: %v", err)
	}
	if got.Artist != "Band" || got.Title != "Song" {
		t.Errorf("ReadTag = %+v, want Band/Song", got)
	}
}

func TestFileReader_TaggedMP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, path)
	tagMP3(t, path, map[string]string{"TPE1": "Band", "TIT2": "Song"})

	md, ok := FileReader{}.Read(path)
	if !ok {
		t.Fatal("expected metadata for a tagged file")
	}
	if md.Artist != "Band" || md.Title != "Song" {
		t.Errorf("Read = %+v, want Band/Song", md)
	}
}

func TestFileReader_TagsOnlyStillReadsTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, path)
	tagMP3(t, path, map[string]string{"TPE1": "Band", "TIT2": "Song"})

	md, ok := FileReader{TagsOnly: true}.Read(path)
	if !ok {
		t.Fatal("expected metadata for a tagged file")
	}
	if md.Artist != "Band" || md.Title != "Song" || md.Duration != 0 {
		t.Errorf("Read = %+v, want Band/Song without duration", md)
	}
}
