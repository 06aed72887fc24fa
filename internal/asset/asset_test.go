package asset

import (
	"bytes"
	"image/png"
	"os"
	"testing"

	"github.com/silbinarywolf/simple2d/internal/audio"
)

func TestWriteTo(t *testing.T) {
	paths, err := WriteTo(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{paths.Player, paths.Beep, paths.Font} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	img, err := png.Decode(bytes.NewReader(Player))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("unexpected player size %v", img.Bounds())
	}
	pcm, err := audio.Decode(paths.Beep, audio.DefaultSampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != 4410*audio.FrameSize {
		t.Errorf("unexpected beep length %d", len(pcm))
	}
}
