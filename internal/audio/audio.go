// audio decodes sound files to PCM and plays them on a Mixer.
//
// PCM is always 16-bit signed little endian stereo at the mixer's sample
// rate, which is the format the ebiten decoders produce.
package audio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

const (
	DefaultSampleRate = 44100
	ChannelCount      = 2
	BytesPerSample    = 2

	// FrameSize is the size of one sample across all channels
	FrameSize = ChannelCount * BytesPerSample
)

// Mixer plays decoded PCM. Play must not block and overlapping calls
// must mix.
type Mixer interface {
	SampleRate() int
	Play(pcm []byte)
	Close() error
}

type decoder func(sampleRate int, src *bytes.Reader) (io.Reader, error)

var decoders = map[string]decoder{
	".wav": func(sampleRate int, src *bytes.Reader) (io.Reader, error) {
		return wav.DecodeWithSampleRate(sampleRate, src)
	},
	".ogg": func(sampleRate int, src *bytes.Reader) (io.Reader, error) {
		return vorbis.DecodeWithSampleRate(sampleRate, src)
	},
	".mp3": func(sampleRate int, src *bytes.Reader) (io.Reader, error) {
		return mp3.DecodeWithSampleRate(sampleRate, src)
	},
}

func init() {
	decoders[".oga"] = decoders[".ogg"]
	decoders[".wave"] = decoders[".wav"]
}

// Decode reads the file at path and decodes it to PCM at sampleRate. The
// decoder is picked by file extension.
func Decode(path string, sampleRate int) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, errors.Errorf("unsupported sound format %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read sound")
	}
	stream, err := decode(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}
	// Drop a trailing partial frame
	pcm = pcm[:len(pcm)-len(pcm)%FrameSize]
	return pcm, nil
}

// Silent discards everything it is asked to play. It stands in when no
// audio device could be opened.
type Silent struct {
	Rate int
}

func (m Silent) SampleRate() int {
	if m.Rate <= 0 {
		return DefaultSampleRate
	}
	return m.Rate
}

func (Silent) Play([]byte) {}

func (Silent) Close() error { return nil }

// Recorder keeps every buffer it is asked to play, for headless runs
type Recorder struct {
	Rate   int
	played [][]byte
	closed bool
}

func (m *Recorder) SampleRate() int {
	if m.Rate <= 0 {
		return DefaultSampleRate
	}
	return m.Rate
}

func (m *Recorder) Play(pcm []byte) {
	if m.closed {
		return
	}
	m.played = append(m.played, pcm)
}

// Played is every buffer played so far, in order
func (m *Recorder) Played() [][]byte {
	return m.played
}

func (m *Recorder) Closed() bool {
	return m.closed
}

func (m *Recorder) Close() error {
	m.closed = true
	return nil
}
