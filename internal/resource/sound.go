package resource

import (
	"log"

	"github.com/silbinarywolf/simple2d/internal/audio"
)

// Sound is a decoded sound effect. It does not depend on the GPU context.
type Sound struct {
	Path string

	mixer audio.Mixer
	pcm   []byte
}

// CreateSound decodes the sound at path. Failing to load is not fatal, it
// is logged and the returned Sound plays nothing.
func CreateSound(mixer audio.Mixer, path string) *Sound {
	snd := &Sound{
		Path:  path,
		mixer: mixer,
	}
	pcm, err := audio.Decode(path, mixer.SampleRate())
	if err != nil {
		log.Printf("warning: unable to load sound: %v", err)
		return snd
	}
	snd.pcm = pcm
	return snd
}

// Loaded is false if decoding failed or the sound was freed
func (snd *Sound) Loaded() bool {
	return snd.pcm != nil
}

// Play starts the sound without waiting for it. Plays may overlap.
func (snd *Sound) Play() {
	if snd == nil || snd.pcm == nil {
		return
	}
	snd.mixer.Play(snd.pcm)
}

func (snd *Sound) Free() {
	if snd == nil {
		return
	}
	snd.pcm = nil
}
