//go:build !headless

package simple2d

import (
	"log"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/audio"
	"github.com/silbinarywolf/simple2d/internal/audio/speaker"
)

// openMixer opens the audio device, falling back to silence without one
func openMixer() audio.Mixer {
	s, err := speaker.Open(audio.DefaultSampleRate)
	if err != nil {
		log.Printf("warning: sound disabled: %v", err)
		return audio.Silent{}
	}
	return s
}

// Screenshot is only available in headless builds
func Screenshot(w *Window, path string) error {
	return errors.Errorf("screenshots need the software renderer, %s is in use", w.Renderer().API())
}
