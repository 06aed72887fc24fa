// speaker plays PCM on the default audio device through oto
package speaker

import (
	"bytes"

	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/audio"
)

var _ audio.Mixer = new(Speaker)

type Speaker struct {
	context    *oto.Context
	sampleRate int
	players    []*oto.Player
	closed     bool
}

// Open opens the audio device. It blocks until the device is ready.
//
// note: oto allows one context per process, so Open must only be called once.
func Open(sampleRate int) (*Speaker, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to open audio device")
	}
	<-ready
	return &Speaker{
		context:    context,
		sampleRate: sampleRate,
	}, nil
}

func (s *Speaker) SampleRate() int {
	return s.sampleRate
}

// Play starts pcm on a new player, so sounds overlap
func (s *Speaker) Play(pcm []byte) {
	if s.closed || len(pcm) == 0 {
		return
	}
	s.reap()
	player := s.context.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	s.players = append(s.players, player)
}

// reap closes players that finished
func (s *Speaker) reap() {
	active := s.players[:0]
	for _, player := range s.players {
		if player.IsPlaying() {
			active = append(active, player)
			continue
		}
		player.Close()
	}
	for i := len(active); i < len(s.players); i++ {
		s.players[i] = nil
	}
	s.players = active
}

func (s *Speaker) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, player := range s.players {
		player.Close()
	}
	s.players = nil
	if err := s.context.Suspend(); err != nil {
		return errors.Wrap(err, "unable to suspend audio device")
	}
	return nil
}
