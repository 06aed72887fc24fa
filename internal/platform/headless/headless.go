// headless is a platform without a window, so the frame loop can run on CI
// servers and in tests. Input is scripted by the caller.
package headless

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/silbinarywolf/simple2d/internal/input"
	"github.com/silbinarywolf/simple2d/internal/platform"
)

var _ platform.Platform = new(Platform)

type Platform struct {
	config platform.Config

	events      []platform.Event
	keys        input.State
	keyCodes    map[string]uint32
	cursorX     int
	cursorY     int
	presented   int
	openFonts   int
	shutdownLog []string

	// OnPresent is called after every presented frame, with the number of
	// frames presented so far. Use it to script input for the next frame.
	OnPresent func(p *Platform, frame int)
}

func New(config platform.Config) *Platform {
	return &Platform{
		config:   config,
		keyCodes: make(map[string]uint32),
	}
}

func (p *Platform) Config() platform.Config {
	return p.config
}

// Push queues raw events for the next poll
func (p *Platform) Push(events ...platform.Event) {
	p.events = append(p.events, events...)
}

// Press holds key down, queueing a KeyPress if it was up
func (p *Platform) Press(key string) {
	if !p.keys.Press(key) {
		return
	}
	p.Push(platform.KeyPress{Code: p.code(key), Name: key})
}

// Release lets key up, queueing a KeyRelease if it was held
func (p *Platform) Release(key string) {
	if !p.keys.Release(key) {
		return
	}
	p.Push(platform.KeyRelease{Code: p.code(key), Name: key})
}

// RequestQuit queues a window close
func (p *Platform) RequestQuit() {
	p.Push(platform.Quit{})
}

func (p *Platform) MoveCursor(x, y int) {
	p.cursorX, p.cursorY = x, y
}

// code gives each key name a stable fake scancode
func (p *Platform) code(key string) uint32 {
	code, ok := p.keyCodes[key]
	if !ok {
		code = uint32(len(p.keyCodes) + 1)
		p.keyCodes[key] = code
	}
	return code
}

func (p *Platform) PollEvent() (platform.Event, bool) {
	if len(p.events) == 0 {
		return nil, false
	}
	event := p.events[0]
	p.events[0] = nil
	p.events = p.events[1:]
	return event, true
}

func (p *Platform) AppendHeldKeys(dst []string) []string {
	return p.keys.AppendHeld(dst)
}

func (p *Platform) CursorPosition() (int, int) {
	return p.cursorX, p.cursorY
}

func (p *Platform) Present() {
	p.presented++
	if p.OnPresent != nil {
		p.OnPresent(p, p.presented)
	}
}

// Presented is the number of frames presented
func (p *Platform) Presented() int {
	return p.presented
}

// OpenFonts is the number of fonts opened and not yet closed
func (p *Platform) OpenFonts() int {
	return p.openFonts
}

// ShutdownLog lists the teardown steps run so far, in order
func (p *Platform) ShutdownLog() []string {
	return p.shutdownLog
}

func (p *Platform) LoadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open image")
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode image %s", path)
	}
	return platform.ToRGBA(img), nil
}

func (p *Platform) OpenFont(path string, size int) (platform.Font, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid font size %d", size)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read font")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse font %s", path)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create face for %s", path)
	}
	p.openFonts++
	return &openTypeFont{platform: p, face: face}, nil
}

type openTypeFont struct {
	platform *Platform
	face     font.Face
}

func (f *openTypeFont) Render(msg string, c color.Color) (*image.RGBA, error) {
	if f.face == nil {
		return nil, errors.New("font is closed")
	}
	metrics := f.face.Metrics()
	width := font.MeasureString(f.face, msg).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(msg)
	return dst, nil
}

func (f *openTypeFont) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	f.platform.openFonts--
	return err
}

func (p *Platform) QuitImage() {
	p.shutdownLog = append(p.shutdownLog, "image")
}

func (p *Platform) DestroyContext() {
	p.shutdownLog = append(p.shutdownLog, "context")
}

func (p *Platform) DestroyWindow() {
	p.shutdownLog = append(p.shutdownLog, "window")
}

func (p *Platform) Quit() {
	p.shutdownLog = append(p.shutdownLog, "platform")
}
