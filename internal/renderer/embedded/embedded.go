// embedded draws with OpenGL ES 2.0, for Raspberry Pi class devices
package embedded

import (
	"image"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/renderer"
)

const vertexShaderSource = `
uniform mat4 u_mvp;
attribute vec2 a_position;
attribute vec4 a_color;
attribute vec2 a_texcoord;
varying vec4 v_color;
varying vec2 v_texcoord;
void main() {
	gl_Position = u_mvp * vec4(a_position, 0.0, 1.0);
	v_color = a_color;
	v_texcoord = a_texcoord;
}
`

const fragmentShaderSource = `
precision mediump float;
uniform sampler2D u_texture;
uniform float u_textured;
varying vec4 v_color;
varying vec2 v_texcoord;
void main() {
	vec4 texel = texture2D(u_texture, v_texcoord);
	gl_FragColor = mix(v_color, texel * v_color, u_textured);
}
`

// x, y, r, g, b, a, u, v
const floatsPerVertex = 8

const stride = floatsPerVertex * 4

var _ renderer.Renderer = new(Renderer)

type Renderer struct {
	initialized bool
	program     uint32
	vbo         uint32

	mvpUniform      int32
	textureUniform  int32
	texturedUniform int32
	positionAttrib  uint32
	colorAttrib     uint32
	texcoordAttrib  uint32

	vertices [6 * floatsPerVertex]float32
	live     map[*texture]struct{}
}

type texture struct {
	id     uint32
	width  int
	height int
}

func (t *texture) Size() (int, int) {
	return t.width, t.height
}

func New() *Renderer {
	return &Renderer{
		live: make(map[*texture]struct{}),
	}
}

func (r *Renderer) API() renderer.API {
	return renderer.Embedded
}

func (r *Renderer) Init(width, height int) error {
	if r.initialized {
		return errors.New("embedded renderer already initialized")
	}
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "unable to load OpenGL ES 2.0 functions")
	}
	program, err := buildProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	r.initialized = true
	r.program = program

	r.mvpUniform = gl.GetUniformLocation(program, gl.Str("u_mvp\x00"))
	r.textureUniform = gl.GetUniformLocation(program, gl.Str("u_texture\x00"))
	r.texturedUniform = gl.GetUniformLocation(program, gl.Str("u_textured\x00"))
	r.positionAttrib = uint32(gl.GetAttribLocation(program, gl.Str("a_position\x00")))
	r.colorAttrib = uint32(gl.GetAttribLocation(program, gl.Str("a_color\x00")))
	r.texcoordAttrib = uint32(gl.GetAttribLocation(program, gl.Str("a_texcoord\x00")))

	gl.GenBuffers(1, &r.vbo)

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.BLEND)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	mvp := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(program)
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
	gl.Uniform1i(r.textureUniform, 0)
	return nil
}

func buildProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.Errorf("link error: %s", log)
	}
	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile error: %s", log)
	}
	return shader, nil
}

func (r *Renderer) Clear(c renderer.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) put(i int, x, y float32, c renderer.Color, u, v float32) {
	copy(r.vertices[i*floatsPerVertex:], []float32{x, y, c.R, c.G, c.B, c.A, u, v})
}

// flush streams the first count vertices and draws them as triangles
func (r *Renderer) flush(count int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, count*stride, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)

	gl.EnableVertexAttribArray(r.positionAttrib)
	gl.VertexAttribPointer(r.positionAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.colorAttrib)
	gl.VertexAttribPointer(r.colorAttrib, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(r.texcoordAttrib)
	gl.VertexAttribPointer(r.texcoordAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.DisableVertexAttribArray(r.positionAttrib)
	gl.DisableVertexAttribArray(r.colorAttrib)
	gl.DisableVertexAttribArray(r.texcoordAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) DrawTriangle(v1, v2, v3 renderer.Vertex) {
	if !r.initialized {
		return
	}
	for i, v := range [...]renderer.Vertex{v1, v2, v3} {
		r.put(i, v.X, v.Y, v.Color, 0, 0)
	}
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Uniform1f(r.texturedUniform, 0)
	r.flush(3)
}

func (r *Renderer) NewTexture(img *image.RGBA) (renderer.Texture, error) {
	if !r.initialized {
		return nil, errors.New("embedded renderer not initialized")
	}
	if img == nil {
		return nil, errors.New("nil image")
	}
	img = renderer.Tight(img)
	bounds := img.Bounds()

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, errors.New("unable to generate texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	// NPOT textures in ES 2.0 need clamped, unmipmapped sampling
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	var pixels unsafe.Pointer
	if len(img.Pix) > 0 {
		pixels = gl.Ptr(img.Pix)
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		pixels,
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return nil, errors.Errorf("glTexImage2D failed with 0x%x", code)
	}

	tex := &texture{
		id:     id,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	r.live[tex] = struct{}{}
	return tex, nil
}

func (r *Renderer) DrawTexture(t renderer.Texture, x, y int) error {
	tex, ok := t.(*texture)
	if !ok {
		return errors.Errorf("texture %T was not created by this renderer", t)
	}
	if _, ok := r.live[tex]; !ok || !gl.IsTexture(tex.id) {
		return errors.Errorf("texture %d is not a live texture", tex.id)
	}
	x0, y0 := float32(x), float32(y)
	x1, y1 := x0+float32(tex.width), y0+float32(tex.height)
	white := renderer.White
	r.put(0, x0, y0, white, 0, 0)
	r.put(1, x1, y0, white, 1, 0)
	r.put(2, x1, y1, white, 1, 1)
	r.put(3, x1, y1, white, 1, 1)
	r.put(4, x0, y1, white, 0, 1)
	r.put(5, x0, y0, white, 0, 0)

	// Surfaces are premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Uniform1f(r.texturedUniform, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	r.flush(6)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (r *Renderer) DeleteTexture(t renderer.Texture) {
	tex, ok := t.(*texture)
	if !ok {
		return
	}
	if _, ok := r.live[tex]; !ok {
		return
	}
	delete(r.live, tex)
	gl.DeleteTextures(1, &tex.id)
}

// Close runs after the GL context is destroyed, which already released the
// program, buffer and textures, so it only drops the bookkeeping.
func (r *Renderer) Close() {
	r.live = make(map[*texture]struct{})
	r.initialized = false
	r.program = 0
	r.vbo = 0
}
