// Package tags reads the optional metadata used to label and time tracks.
// Every lookup degrades quietly: a file without readable tags is not an error
// for callers, it simply has no metadata.
package tags

import (
	"path/filepath"
	"strings"
	"time"
)

// File extensions understood by the readers in this package.
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
	ExtFLAC = ".flac"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Metadata is the subset of a file's tags the player cares about.
// Any field may be empty.
type Metadata struct {
	Artist   string
	Title    string
	Duration time.Duration
}

// Reader looks up metadata for a file.
//
// ok reports whether a tag block was found. Duration is filled whenever the
// stream header could be parsed, even when ok is false.
type Reader interface {
	Read(path string) (md Metadata, ok bool)
}

// FileReader reads tags and stream properties from disk.
type FileReader struct {
	// TagsOnly skips the duration lookup, which can mean reading the
	// whole stream (FLAC) or scanning every frame (MP3).
	TagsOnly bool
}

// Verify FileReader implements Reader at compile time.
var _ Reader = FileReader{}

// Read implements Reader.
func (r FileReader) Read(path string) (Metadata, bool) {
	var md Metadata
	if !r.TagsOnly {
		if d, err := ReadDuration(path); err == nil {
			md.Duration = d
		}
	}

	t, err := ReadTag(path)
	if err != nil {
		return md, false
	}
	md.Artist = t.Artist
	md.Title = t.Title
	return md, true
}

// Tag holds the text tags found in a file.
type Tag struct {
	Artist string
	Title  string
}

func (t *Tag) trim() {
	t.Artist = strings.TrimSpace(t.Artist)
	t.Title = strings.TrimSpace(t.Title)
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// taglibTags wraps a taglib result map.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
