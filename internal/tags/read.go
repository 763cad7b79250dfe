package tags

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// ErrNoTags is returned when a file carries no usable tag block.
var ErrNoTags = errors.New("no tags found")

// ReadTag reads artist and title from a music file.
// dhowden/tag is tried first; format-specific readers take over when it fails.
func ReadTag(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch extOf(path) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2(path)
		case ExtFLAC:
			return readFLACVorbisComments(path)
		case ExtOGG:
			return readWithTaglib(path)
		}
		return nil, fmt.Errorf("%w: %w", ErrNoTags, err)
	}

	t := &Tag{Artist: m.Artist(), Title: m.Title()}
	t.trim()
	return t, nil
}
