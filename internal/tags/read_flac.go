package tags

import (
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
	"go.senan.xyz/taglib"
)

// readFLACVorbisComments reads ARTIST and TITLE from the Vorbis comment block
// of a FLAC file. TagLib is the last resort.
func readFLACVorbisComments(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return readWithTaglib(path)
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			break
		}
		t := &Tag{
			Artist: firstComment(cmts, flacvorbis.FIELD_ARTIST),
			Title:  firstComment(cmts, flacvorbis.FIELD_TITLE),
		}
		t.trim()
		return t, nil
	}

	return readWithTaglib(path)
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmts.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}

// readWithTaglib reads tags using TagLib. It handles Ogg Vorbis and the FLAC
// files go-flac cannot parse.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	if len(rawTags) == 0 {
		return nil, ErrNoTags
	}
	tags := taglibTags(rawTags)

	t := &Tag{
		Artist: tags.get(taglib.Artist, taglib.AlbumArtist),
		Title:  tags.get(taglib.Title),
	}
	t.trim()
	return t, nil
}
