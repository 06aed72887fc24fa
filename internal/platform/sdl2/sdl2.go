// sdl2 is the windowed platform, built on SDL2 with SDL_image and SDL_ttf.
//
// SDL must be driven from the thread that initialized it, so Open locks the
// calling goroutine to its OS thread until Quit.
package sdl2

import (
	"image"
	"image/color"
	"log"
	"runtime"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/platform"
	"github.com/silbinarywolf/simple2d/internal/renderer"
)

var _ platform.Platform = new(Platform)

type Platform struct {
	window  *sdl.Window
	context sdl.GLContext
}

// Open initializes SDL, creates the window and its GL context, and makes the
// context current.
func Open(config platform.Config) (*Platform, error) {
	runtime.LockOSThread()
	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		runtime.UnlockOSThread()
		return nil, fatal.Wrap(fatal.Platform, err, "unable to initialize SDL")
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fatal.Wrap(fatal.Platform, err, "unable to initialize SDL_ttf")
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		// note: Loading still works for formats that did initialize.
		log.Printf("warning: SDL_image init: %v", err)
	}

	setContextAttributes(config.API)

	window, err := sdl.CreateWindow(
		config.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(config.Width),
		int32(config.Height),
		uint32(sdl.WINDOW_OPENGL),
	)
	if err != nil {
		quitLibraries()
		return nil, fatal.Wrap(fatal.Window, err, "unable to create window")
	}
	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		quitLibraries()
		return nil, fatal.Wrap(fatal.Context, err, "unable to create GL context")
	}
	if config.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			log.Printf("warning: unable to enable vsync: %v", err)
		}
	}
	return &Platform{
		window:  window,
		context: context,
	}, nil
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

func setContextAttributes(api renderer.API) {
	attributes := []glAttribute{
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	switch api {
	case renderer.Embedded:
		attributes = append(attributes,
			glAttribute{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES},
			glAttribute{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
			glAttribute{sdl.GL_CONTEXT_MINOR_VERSION, 0},
		)
	default:
		attributes = append(attributes,
			glAttribute{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
			glAttribute{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		)
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			log.Printf("warning: unable to set GL attribute %d: %v", a.attr, err)
		}
	}
}

func quitLibraries() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
	runtime.UnlockOSThread()
}

func (p *Platform) PollEvent() (platform.Event, bool) {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return nil, false
		}
		switch event := event.(type) {
		case *sdl.QuitEvent:
			return platform.Quit{}, true
		case *sdl.KeyboardEvent:
			code := event.Keysym.Scancode
			name := sdl.GetScancodeName(code)
			switch event.Type {
			case sdl.KEYDOWN:
				if event.Repeat != 0 {
					continue
				}
				return platform.KeyPress{Code: uint32(code), Name: name}, true
			case sdl.KEYUP:
				return platform.KeyRelease{Code: uint32(code), Name: name}, true
			}
		}
		// Window, mouse and text events are not reported
	}
}

func (p *Platform) AppendHeldKeys(dst []string) []string {
	for code, state := range sdl.GetKeyboardState() {
		if state == 0 {
			continue
		}
		name := sdl.GetScancodeName(sdl.Scancode(code))
		if name == "" {
			continue
		}
		dst = append(dst, name)
	}
	return dst
}

func (p *Platform) CursorPosition() (int, int) {
	x, y, _ := sdl.GetMouseState()
	return int(x), int(y)
}

func (p *Platform) Present() {
	p.window.GLSwap()
}

func (p *Platform) LoadImage(path string) (*image.RGBA, error) {
	surface, err := img.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load image %s", path)
	}
	defer surface.Free()
	return surfaceToRGBA(surface)
}

// surfaceToRGBA copies a surface into premultiplied RGBA. SDL surfaces are
// unpremultiplied, ABGR8888 is R, G, B, A in memory on little endian.
func surfaceToRGBA(surface *sdl.Surface) (*image.RGBA, error) {
	converted, err := surface.ConvertFormat(uint32(sdl.PIXELFORMAT_ABGR8888), 0)
	if err != nil {
		return nil, errors.Wrap(err, "unable to convert surface to RGBA")
	}
	defer converted.Free()

	width, height := int(converted.W), int(converted.H)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if converted.MustLock() {
		if err := converted.Lock(); err != nil {
			return nil, errors.Wrap(err, "unable to lock surface")
		}
		defer converted.Unlock()
	}
	pixels := converted.Pixels()
	pitch := int(converted.Pitch)
	for y := 0; y < height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+4*width], pixels[y*pitch:y*pitch+4*width])
	}
	return platform.ToRGBA(dst), nil
}

func (p *Platform) OpenFont(path string, size int) (platform.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open font %s", path)
	}
	return &ttfFont{font: f}, nil
}

type ttfFont struct {
	font *ttf.Font
}

func (f *ttfFont) Render(msg string, c color.Color) (*image.RGBA, error) {
	if f.font == nil {
		return nil, errors.New("font is closed")
	}
	if msg == "" {
		// SDL_ttf refuses to render an empty string
		return image.NewRGBA(image.Rect(0, 0, 0, f.font.Height())), nil
	}
	r, g, b, a := c.RGBA()
	surface, err := f.font.RenderUTF8Blended(msg, sdl.Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to render text")
	}
	defer surface.Free()
	return surfaceToRGBA(surface)
}

func (f *ttfFont) Close() error {
	if f.font == nil {
		return nil
	}
	// note: Closing after TTF_Quit touches freed FreeType state, the font
	// is dropped instead.
	if ttf.WasInit() {
		f.font.Close()
	}
	f.font = nil
	return nil
}

func (p *Platform) QuitImage() {
	img.Quit()
}

func (p *Platform) DestroyContext() {
	sdl.GLDeleteContext(p.context)
}

func (p *Platform) DestroyWindow() {
	if err := p.window.Destroy(); err != nil {
		log.Printf("warning: unable to destroy window: %v", err)
	}
}

func (p *Platform) Quit() {
	ttf.Quit()
	sdl.Quit()
	runtime.UnlockOSThread()
}
