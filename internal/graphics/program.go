package graphics

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
)

// Attribute and uniform names the flat-color shaders expose.
const (
	AttribVertexPosition    = "aVertexPosition"
	UniformVertexColor      = "uVertexColor"
	UniformModelViewMatrix  = "uModelViewMatrix"
	UniformProjectionMatrix = "uProjectionMatrix"
)

// QuadVertices is a 2×2 square in the xy plane as two triangles.
var QuadVertices = [...]float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	1.0, 1.0, 0.0,

	-1.0, -1.0, 0.0,
	1.0, 1.0, 0.0,
	-1.0, 1.0, 0.0,
}

const quadVertexCount = int32(len(QuadVertices) / 3)

// QuadProgram draws one flat-colored quad per Run call. It owns the linked
// program, its attribute and uniform locations and the quad vertex buffer.
type QuadProgram struct {
	ctx    Context
	logger *log.Logger

	program          uint32
	vertexPosition   uint32
	vertexColor      int32
	modelViewMatrix  int32
	projectionMatrix int32
	positionBuffer   uint32

	draws uint64
}

// NewQuadProgram compiles and links the shaders, resolves every location
// and uploads the quad. On error nothing is left allocated on ctx.
func NewQuadProgram(ctx Context, logger *log.Logger) (*QuadProgram, error) {
	if logger == nil {
		logger = log.Default()
	}

	program, err := compileProgram(ctx, vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	q := &QuadProgram{ctx: ctx, logger: logger, program: program}
	if err := q.resolveLocations(); err != nil {
		ctx.DeleteProgram(program)
		return nil, err
	}

	buffer := ctx.CreateBuffer()
	if buffer == 0 {
		ctx.DeleteProgram(program)
		return nil, &SurfaceSetupError{Err: fmt.Errorf("failed to create buffer")}
	}
	ctx.BindArrayBuffer(buffer)
	ctx.ArrayBufferData(QuadVertices[:])
	ctx.BindArrayBuffer(0)
	q.positionBuffer = buffer

	return q, nil
}

func (q *QuadProgram) resolveLocations() error {
	loc := q.ctx.GetAttribLocation(q.program, AttribVertexPosition)
	if loc < 0 {
		return &LocationNotFoundError{Name: AttribVertexPosition}
	}
	q.vertexPosition = uint32(loc)

	uniforms := []struct {
		name string
		dst  *int32
	}{
		{UniformVertexColor, &q.vertexColor},
		{UniformModelViewMatrix, &q.modelViewMatrix},
		{UniformProjectionMatrix, &q.projectionMatrix},
	}
	for _, u := range uniforms {
		loc := q.ctx.GetUniformLocation(q.program, u.name)
		if loc < 0 {
			return &LocationNotFoundError{Name: u.name}
		}
		*u.dst = loc
	}
	return nil
}

// Run draws the quad with the given color and transforms. A GL error after
// the draw is logged and otherwise ignored.
func (q *QuadProgram) Run(color [4]float32, projection, modelView mgl32.Mat4) {
	c := q.ctx
	c.UseProgram(q.program)

	c.UniformMatrix4(q.projectionMatrix, projection)
	c.UniformMatrix4(q.modelViewMatrix, modelView)
	c.Uniform4(q.vertexColor, color)

	c.BindArrayBuffer(q.positionBuffer)
	c.VertexAttribPointer(q.vertexPosition, 3, false, 0, 0)
	c.EnableVertexAttribArray(q.vertexPosition)

	c.DrawTriangles(0, quadVertexCount)
	q.draws++

	if code := c.GetError(); code != NoError {
		q.logger.Warn("gl error", "code", fmt.Sprintf("0x%04X", code))
	}
	c.UseProgram(0)
}

// Draws returns how many quads Run has submitted.
func (q *QuadProgram) Draws() uint64 {
	return q.draws
}

// Dispose releases the vertex buffer and program.
func (q *QuadProgram) Dispose() {
	if q.positionBuffer != 0 {
		q.ctx.DeleteBuffer(q.positionBuffer)
		q.positionBuffer = 0
	}
	if q.program != 0 {
		q.ctx.DeleteProgram(q.program)
		q.program = 0
	}
}
