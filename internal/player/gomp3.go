package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3Stream adapts llehouerou/go-mp3 to beep.StreamSeekCloser.
// Seeking is what lets beep.Loop2 rewind it at the end of each pass.
type mp3Stream struct {
	decoder *mp3.Decoder
	closer  io.Closer
	err     error
	buf     []byte
}

// go-mp3 always yields interleaved stereo 16-bit little-endian PCM.
const mp3FrameBytes = 4

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	decoder, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{decoder: decoder, closer: rc}, format, nil
}

// Stream reads audio samples into the provided buffer.
func (s *mp3Stream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	want := len(samples) * mp3FrameBytes
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]

	read, err := io.ReadFull(s.decoder, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	frames := read / mp3FrameBytes
	for i := range frames {
		off := i * mp3FrameBytes
		left := int16(binary.LittleEndian.Uint16(buf[off:]))    //nolint:gosec // audio samples
		right := int16(binary.LittleEndian.Uint16(buf[off+2:])) //nolint:gosec // audio samples
		samples[i][0] = float64(left) / 32768.0
		samples[i][1] = float64(right) / 32768.0
	}
	return frames, frames > 0
}

// Err returns any error that occurred during streaming.
func (s *mp3Stream) Err() error {
	return s.err
}

// Len returns the total number of samples.
func (s *mp3Stream) Len() int {
	return int(max(s.decoder.SampleCount(), 0))
}

// Position returns the current sample position.
func (s *mp3Stream) Position() int {
	return int(s.decoder.SamplePosition())
}

// Seek seeks to the given sample position.
func (s *mp3Stream) Seek(p int) error {
	p = max(0, min(p, s.Len()))
	if err := s.decoder.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

// Close closes the underlying file.
func (s *mp3Stream) Close() error {
	return s.closer.Close()
}
