// asset holds the files the demo loads. The platform loaders read from
// disk, so WriteTo copies them into a directory first.
package asset

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed player.png
var Player []byte

//go:embed beep.wav
var Beep []byte

// Font is Go Regular
var Font = goregular.TTF

const (
	PlayerFile = "player.png"
	BeepFile   = "beep.wav"
	FontFile   = "goregular.ttf"
)

// Paths are where WriteTo put each asset
type Paths struct {
	Player string
	Beep   string
	Font   string
}

// WriteTo writes every asset into dir, creating it if needed
func WriteTo(dir string) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, errors.Wrap(err, "unable to create asset directory")
	}
	paths := Paths{
		Player: filepath.Join(dir, PlayerFile),
		Beep:   filepath.Join(dir, BeepFile),
		Font:   filepath.Join(dir, FontFile),
	}
	files := []struct {
		path string
		data []byte
	}{
		{paths.Player, Player},
		{paths.Beep, Beep},
		{paths.Font, Font},
	}
	for _, file := range files {
		if err := os.WriteFile(file.path, file.data, 0o644); err != nil {
			return Paths{}, errors.Wrapf(err, "unable to write %s", file.path)
		}
	}
	return paths, nil
}
