package graphics

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage selects which pipeline stage a shader object compiles for.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Capability is a server-side feature toggled with Enable.
type Capability int

const (
	CapDepthTest Capability = iota
)

// ClearMask selects the buffers Clear resets.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// NoError is what GetError returns when no error is pending.
const NoError uint32 = 0

// Context is the slice of an OpenGL-style rendering context the game uses.
// Object handles are uint32 with 0 meaning "none"; location lookups return
// -1 when the name is not an active attribute or uniform.
type Context interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	CreateBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// ArrayBufferData uploads data to the bound array buffer for static drawing.
	ArrayBufferData(data []float32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes float components of the bound array buffer.
	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform4(location int32, v [4]float32)
	DrawTriangles(first, count int32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	Viewport(x, y, width, height int32)
	GetError() uint32
}
