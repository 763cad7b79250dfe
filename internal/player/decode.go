package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/looper/internal/tags"
)

// decode picks a decoder from the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case tags.ExtMP3:
		return decodeGoMP3(f)
	case tags.ExtWAV:
		return wav.Decode(f)
	case tags.ExtOGG:
		return vorbis.Decode(f)
	case tags.ExtFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := tags.SkipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
}
