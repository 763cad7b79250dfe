package catalog

import (
	"github.com/llehouerou/looper/internal/tags"
)

// unknownArtist labels tagged files that carry a title but no artist.
const unknownArtist = "Unknown"

// DisplayName builds the label for a file.
//
// With tags (ok) the label is "artist - title", where a missing artist reads
// "Unknown" and a missing title falls back to the file stem. Without tags it
// is the stem, or the full path when showFullPath is set.
func DisplayName(path string, md tags.Metadata, ok, showFullPath bool) string {
	if ok {
		artist := md.Artist
		if artist == "" {
			artist = unknownArtist
		}
		title := md.Title
		if title == "" {
			title = stem(path)
		}
		return artist + " - " + title
	}
	if showFullPath {
		return path
	}
	return stem(path)
}

func displayNameFor(path string, opts Options) string {
	if opts.Tags == nil {
		return DisplayName(path, tags.Metadata{}, false, opts.ShowFullPath)
	}
	md, ok := opts.Tags.Read(path)
	return DisplayName(path, md, ok, opts.ShowFullPath)
}
