// Package graphicstest provides a headless graphics.Context for tests.
package graphicstest

import (
	"lanerunner/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw is the uniform state at the time of one DrawTriangles call.
type Draw struct {
	Program uint32
	First   int32
	Count   int32
	Vec4    map[string][4]float32
	Mat4    map[string]mgl32.Mat4
}

// Color returns the uVertexColor of the draw.
func (d Draw) Color() [4]float32 { return d.Vec4[graphics.UniformVertexColor] }

// ModelView returns the uModelViewMatrix of the draw.
func (d Draw) ModelView() mgl32.Mat4 { return d.Mat4[graphics.UniformModelViewMatrix] }

// Projection returns the uProjectionMatrix of the draw.
func (d Draw) Projection() mgl32.Mat4 { return d.Mat4[graphics.UniformProjectionMatrix] }

// Recorder implements graphics.Context in memory. It records the name of
// every call in Ops and can be told to fail compilation, linking or
// location lookups.
type Recorder struct {
	// CompileErrors makes the given stage fail to compile with the log text.
	CompileErrors map[graphics.ShaderStage]string
	// LinkError, when set, makes linking fail with this log text.
	LinkError string
	// Missing names attributes or uniforms reported as not found.
	Missing map[string]bool
	// Errors are returned by GetError one at a time, then NoError.
	Errors []uint32

	Ops   []string
	Draws []Draw

	ClearColors  [][4]float32
	ClearMasks   []graphics.ClearMask
	Enabled      map[graphics.Capability]bool
	LastViewport [4]int32
	BufferData   []float32

	nextID  uint32
	shaders map[uint32]graphics.ShaderStage
	live    map[uint32]string
	names   map[int32]string
	vec4    map[string][4]float32
	mat4    map[string]mgl32.Mat4
	program uint32
}

func NewRecorder() *Recorder {
	return &Recorder{
		CompileErrors: make(map[graphics.ShaderStage]string),
		Missing:       make(map[string]bool),
		Enabled:       make(map[graphics.Capability]bool),
		shaders:       make(map[uint32]graphics.ShaderStage),
		live:          make(map[uint32]string),
		names:         make(map[int32]string),
		vec4:          make(map[string][4]float32),
		mat4:          make(map[string]mgl32.Mat4),
	}
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, o := range r.Ops {
		if o == op {
			n++
		}
	}
	return n
}

// Live returns the number of shaders, programs and buffers not yet deleted.
func (r *Recorder) Live() int { return len(r.live) }

// Reset forgets recorded calls and draws but keeps created objects.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Draws = nil
	r.ClearColors = nil
	r.ClearMasks = nil
}

func (r *Recorder) record(op string) { r.Ops = append(r.Ops, op) }

func (r *Recorder) create(kind string) uint32 {
	r.nextID++
	r.live[r.nextID] = kind
	return r.nextID
}

func (r *Recorder) CreateShader(stage graphics.ShaderStage) uint32 {
	r.record("CreateShader")
	id := r.create("shader")
	r.shaders[id] = stage
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) { r.record("ShaderSource") }
func (r *Recorder) CompileShader(shader uint32)               { r.record("CompileShader") }

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	_, failed := r.CompileErrors[r.shaders[shader]]
	return !failed
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	return r.CompileErrors[r.shaders[shader]]
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader")
	delete(r.live, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	return r.create("program")
}

func (r *Recorder) AttachShader(program, shader uint32) { r.record("AttachShader") }

func (r *Recorder) LinkProgram(program uint32)        { r.record("LinkProgram") }
func (r *Recorder) ProgramLinked(program uint32) bool { return r.LinkError == "" }
func (r *Recorder) ProgramInfoLog(program uint32) string {
	return r.LinkError
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram")
	r.program = program
}

// CurrentProgram returns the program bound by the last UseProgram.
func (r *Recorder) CurrentProgram() uint32 { return r.program }

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram")
	delete(r.live, program)
}

func (r *Recorder) lookup(name string) int32 {
	if r.Missing[name] {
		return -1
	}
	for loc, n := range r.names {
		if n == name {
			return loc
		}
	}
	loc := int32(len(r.names))
	r.names[loc] = name
	return loc
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	r.record("GetAttribLocation")
	return r.lookup(name)
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation")
	return r.lookup(name)
}

func (r *Recorder) CreateBuffer() uint32 {
	r.record("CreateBuffer")
	return r.create("buffer")
}

func (r *Recorder) BindArrayBuffer(buffer uint32) { r.record("BindArrayBuffer") }

func (r *Recorder) ArrayBufferData(data []float32) {
	r.record("ArrayBufferData")
	r.BufferData = append([]float32(nil), data...)
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer")
	delete(r.live, buffer)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer")
}

func (r *Recorder) EnableVertexAttribArray(index uint32) { r.record("EnableVertexAttribArray") }

func (r *Recorder) UniformMatrix4(location int32, m mgl32.Mat4) {
	r.record("UniformMatrix4:" + r.names[location])
	r.mat4[r.names[location]] = m
}

func (r *Recorder) Uniform4(location int32, v [4]float32) {
	r.record("Uniform4:" + r.names[location])
	r.vec4[r.names[location]] = v
}

func (r *Recorder) DrawTriangles(first, count int32) {
	r.record("DrawTriangles")
	d := Draw{
		Program: r.program,
		First:   first,
		Count:   count,
		Vec4:    make(map[string][4]float32, len(r.vec4)),
		Mat4:    make(map[string]mgl32.Mat4, len(r.mat4)),
	}
	for k, v := range r.vec4 {
		d.Vec4[k] = v
	}
	for k, v := range r.mat4 {
		d.Mat4[k] = v
	}
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor")
	r.ClearColors = append(r.ClearColors, [4]float32{red, green, blue, alpha})
}

func (r *Recorder) Clear(mask graphics.ClearMask) {
	r.record("Clear")
	r.ClearMasks = append(r.ClearMasks, mask)
}

func (r *Recorder) Enable(c graphics.Capability) {
	r.record("Enable")
	r.Enabled[c] = true
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport")
	r.LastViewport = [4]int32{x, y, width, height}
}

func (r *Recorder) GetError() uint32 {
	r.record("GetError")
	if len(r.Errors) == 0 {
		return graphics.NoError
	}
	code := r.Errors[0]
	r.Errors = r.Errors[1:]
	return code
}

var _ graphics.Context = (*Recorder)(nil)
