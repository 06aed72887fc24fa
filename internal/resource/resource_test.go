package resource

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/silbinarywolf/simple2d/internal/audio"
	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/platform"
	"github.com/silbinarywolf/simple2d/internal/platform/headless"
	"github.com/silbinarywolf/simple2d/internal/renderer/software"
)

func setup(t *testing.T) (*software.Renderer, *headless.Platform) {
	t.Helper()
	r := software.New()
	if err := r.Init(64, 64); err != nil {
		t.Fatal(err)
	}
	return r, headless.New(platform.Config{Width: 64, Height: 64})
}

func writePNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(t.TempDir(), "image.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImageCreateFree(t *testing.T) {
	r, p := setup(t)
	img, err := CreateImage(r, p, writePNG(t, 5, 3))
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 5 || img.Height() != 3 {
		t.Errorf("unexpected image size %dx%d", img.Width(), img.Height())
	}
	if r.LiveTextures() != 1 {
		t.Fatalf("expected 1 live texture, got %d", r.LiveTextures())
	}
	img.Free()
	if r.LiveTextures() != 0 || img.Texture() != nil || img.Surface() != nil {
		t.Errorf("expected free to release the texture and surface")
	}
	img.Free()
}

func TestImageLoadFailure(t *testing.T) {
	r, p := setup(t)
	img, err := CreateImage(r, p, filepath.Join(t.TempDir(), "missing.png"))
	if img != nil {
		t.Errorf("expected no image")
	}
	if !fatal.Is(err, fatal.ImageLoad) {
		t.Errorf("expected an image load error, got %v", err)
	}
	if r.LiveTextures() != 0 {
		t.Errorf("a failed load uploaded a texture")
	}
}

func TestImageUploadFailure(t *testing.T) {
	r, p := setup(t)
	r.Close()
	_, err := CreateImage(r, p, writePNG(t, 2, 2))
	if !fatal.Is(err, fatal.TextureUpload) {
		t.Errorf("expected a texture upload error, got %v", err)
	}
}

func TestTextCreateFree(t *testing.T) {
	r, p := setup(t)
	txt, err := CreateText(r, p, writeFont(t), "Hello", 20)
	if err != nil {
		t.Fatal(err)
	}
	if txt.Message() != "Hello" || txt.Width() == 0 || txt.Height() == 0 {
		t.Errorf("unexpected text %q %dx%d", txt.Message(), txt.Width(), txt.Height())
	}
	if r.LiveTextures() != 1 || p.OpenFonts() != 1 {
		t.Fatalf("expected 1 texture and 1 font, got %d and %d", r.LiveTextures(), p.OpenFonts())
	}

	// Glyphs are white, so every drawn pixel has equal channels
	for i := 0; i < len(txt.Surface().Pix); i += 4 {
		px := txt.Surface().Pix[i : i+4]
		if px[0] != px[3] || px[1] != px[3] || px[2] != px[3] {
			t.Fatalf("expected premultiplied white, got %v", px)
		}
	}

	txt.Free()
	if r.LiveTextures() != 0 || p.OpenFonts() != 0 {
		t.Errorf("expected no leaks, got %d textures and %d fonts", r.LiveTextures(), p.OpenFonts())
	}
}

func TestTextSetMessage(t *testing.T) {
	r, p := setup(t)
	txt, err := CreateText(r, p, writeFont(t), "a", 20)
	if err != nil {
		t.Fatal(err)
	}
	narrow := txt.Width()
	if err := txt.SetMessage("a much longer line"); err != nil {
		t.Fatal(err)
	}
	if txt.Width() <= narrow {
		t.Errorf("expected the longer message to be wider, got %d <= %d", txt.Width(), narrow)
	}
	if r.LiveTextures() != 1 || p.OpenFonts() != 1 {
		t.Errorf("expected the texture to be replaced, got %d textures and %d fonts", r.LiveTextures(), p.OpenFonts())
	}
	txt.Free()
	if err := txt.SetMessage("again"); err == nil {
		t.Errorf("expected setting a message on freed text to fail")
	}
}

func TestTextFontFailure(t *testing.T) {
	r, p := setup(t)
	_, err := CreateText(r, p, filepath.Join(t.TempDir(), "missing.ttf"), "Hello", 20)
	if !fatal.Is(err, fatal.FontLoad) {
		t.Errorf("expected a font load error, got %v", err)
	}
	if r.LiveTextures() != 0 || p.OpenFonts() != 0 {
		t.Errorf("a failed create leaked resources")
	}
}

func TestTextUploadFailureClosesFont(t *testing.T) {
	r, p := setup(t)
	r.Close()
	_, err := CreateText(r, p, writeFont(t), "Hello", 20)
	if !fatal.Is(err, fatal.TextureUpload) {
		t.Errorf("expected a texture upload error, got %v", err)
	}
	if p.OpenFonts() != 0 {
		t.Errorf("expected the font to be closed, %d open", p.OpenFonts())
	}
}

func TestUnreadableSoundPlaysNothing(t *testing.T) {
	mixer := &audio.Recorder{}
	snd := CreateSound(mixer, filepath.Join(t.TempDir(), "missing.wav"))
	if snd == nil {
		t.Fatal("expected a sound even when loading fails")
	}
	if snd.Loaded() {
		t.Errorf("expected the sound to be unloaded")
	}
	snd.Play()
	snd.Play()
	if len(mixer.Played()) != 0 {
		t.Errorf("expected no plays, got %d", len(mixer.Played()))
	}
	snd.Free()
}

func TestSoundPlayOverlaps(t *testing.T) {
	// 16-bit stereo WAV with 8 frames of silence
	data := []byte{
		'R', 'I', 'F', 'F', 68, 0, 0, 0, 'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ', 16, 0, 0, 0, 1, 0, 2, 0,
		0x44, 0xac, 0, 0, 0x10, 0xb1, 0x02, 0, 4, 0, 16, 0,
		'd', 'a', 't', 'a', 32, 0, 0, 0,
	}
	data = append(data, make([]byte, 32)...)
	path := filepath.Join(t.TempDir(), "silence.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	mixer := &audio.Recorder{}
	snd := CreateSound(mixer, path)
	if !snd.Loaded() {
		t.Fatal("expected the sound to load")
	}
	snd.Play()
	snd.Play()
	if len(mixer.Played()) != 2 || len(mixer.Played()[0]) != 32 {
		t.Errorf("expected two plays of 32 bytes, got %d", len(mixer.Played()))
	}
	snd.Free()
	snd.Play()
	if len(mixer.Played()) != 2 {
		t.Errorf("a freed sound played")
	}
}
