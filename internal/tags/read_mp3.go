package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads MP3 tags using only the id3v2 library.
// Used when dhowden/tag rejects the file.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	if !id3tag.HasFrames() {
		return nil, ErrNoTags
	}

	t := &Tag{
		Artist: id3tag.Artist(),
		Title:  id3tag.Title(),
	}
	if t.Artist == "" {
		t.Artist = getID3TextFrame(id3tag, "TPE2") // album artist
	}
	t.trim()
	return t, nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
