package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"
	"go.senan.xyz/taglib"
)

// ReadDuration returns the playing time of an audio file without decoding
// the whole stream where the format allows it.
func ReadDuration(path string) (time.Duration, error) {
	switch extOf(path) {
	case ExtMP3:
		return readMP3Duration(path)
	case ExtFLAC:
		return readFLACDuration(path)
	case ExtWAV:
		return readWAVDuration(path)
	case ExtOGG:
		return readTaglibDuration(path)
	}
	return 0, fmt.Errorf("unsupported format: %s", extOf(path))
}

func readMP3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return 0, errors.New("mp3: invalid sample rate")
	}
	sampleCount := max(decoder.SampleCount(), 0)

	return samplesToDuration(sampleCount, int64(sampleRate)), nil
}

// readFLACDuration reads total samples and sample rate from the STREAMINFO block.
func readFLACDuration(path string) (time.Duration, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return readTaglibDuration(path)
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.StreamInfo || len(meta.Data) < 18 {
			continue
		}
		data := meta.Data

		// Sample rate: 20 bits starting at byte 10.
		sampleRate := int64(data[10])<<12 | int64(data[11])<<4 | int64(data[12])>>4
		// Total samples: 36 bits, low nibble of byte 13 then bytes 14-17.
		totalSamples := int64(data[13]&0x0F)<<32 | int64(data[14])<<24 | int64(data[15])<<16 | int64(data[16])<<8 | int64(data[17])

		if sampleRate == 0 {
			return 0, errors.New("flac: invalid sample rate")
		}
		return samplesToDuration(totalSamples, sampleRate), nil
	}

	return 0, errors.New("flac: missing STREAMINFO block")
}

func readWAVDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, err
	}
	return format.SampleRate.D(streamer.Len()), nil
}

func readTaglibDuration(path string) (time.Duration, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return 0, err
	}
	return props.Length, nil
}

func samplesToDuration(samples, sampleRate int64) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// SkipID3v2 skips an ID3v2 tag if present at the beginning of r.
// Some taggers prepend one to FLAC files, which the FLAC decoder rejects.
func SkipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is stored as a syncsafe integer in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
