package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"rt/pkg/render"
)

// GLPresenter uploads each traced frame to a float texture and draws it
// on a fullscreen quad. All methods must be called on the thread that owns
// the GL context.
type GLPresenter struct {
	width         int
	height        int
	vertexArray   uint32
	vertexBuffer  uint32
	elementBuffer uint32
	shaderProgram uint32
	textureID     uint32

	// Size of the allocated texture storage
	texWidth  int
	texHeight int

	textureLocation int32
}

// NewGLPresenter creates the GL resources for a viewport of the given size.
// gl.Init must already have been called for the current context.
func NewGLPresenter(width, height int) (*GLPresenter, error) {
	p := &GLPresenter{
		width:  width,
		height: height,
	}

	var err error
	if p.shaderProgram, err = createShaderProgram(frameVertexShaderSource, frameFragmentShaderSource); err != nil {
		return nil, err
	}
	p.textureLocation = gl.GetUniformLocation(p.shaderProgram, gl.Str("frameTexture\x00"))

	p.setupQuad()

	gl.GenTextures(1, &p.textureID)
	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(width), int32(height))

	return p, nil
}

// setupQuad creates the fullscreen quad. Texture rows are flipped so the
// first frame row lands at the top of the window.
func (p *GLPresenter) setupQuad() {
	vertices := []float32{
		// Position       // Texture coordinates
		-1.0, -1.0, 0.0, 0.0, 1.0, // Bottom left
		1.0, -1.0, 0.0, 1.0, 1.0, // Bottom right
		1.0, 1.0, 0.0, 1.0, 0.0, // Top right
		-1.0, 1.0, 0.0, 0.0, 0.0, // Top left
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	gl.GenVertexArrays(1, &p.vertexArray)
	gl.BindVertexArray(p.vertexArray)

	gl.GenBuffers(1, &p.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.elementBuffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.elementBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Present uploads frame and draws it over the whole viewport
func (p *GLPresenter) Present(frame *render.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if frame == nil || len(frame.Pixels) == 0 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	if frame.Width != p.texWidth || frame.Height != p.texHeight {
		// Reallocate storage when the traced size changes
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(frame.Width), int32(frame.Height), 0, gl.RGBA, gl.FLOAT, gl.Ptr(frame.Pixels))
		p.texWidth = frame.Width
		p.texHeight = frame.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(frame.Width), int32(frame.Height), gl.RGBA, gl.FLOAT, gl.Ptr(frame.Pixels))
	}

	gl.UseProgram(p.shaderProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.textureLocation, 0)

	gl.BindVertexArray(p.vertexArray)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Resize updates the viewport to the new framebuffer size
func (p *GLPresenter) Resize(width, height int) {
	if p.width == width && p.height == height {
		return
	}

	p.width = width
	p.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close releases all OpenGL resources
func (p *GLPresenter) Close() {
	gl.DeleteVertexArrays(1, &p.vertexArray)
	gl.DeleteBuffers(1, &p.vertexBuffer)
	gl.DeleteBuffers(1, &p.elementBuffer)
	gl.DeleteTextures(1, &p.textureID)
	gl.DeleteProgram(p.shaderProgram)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	// Shaders are no longer needed once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
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

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
