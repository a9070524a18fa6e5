package graphics

import "fmt"

// ShaderCompileError is returned when a shader stage fails to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError is returned when the compiled stages fail to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// LocationNotFoundError names an attribute or uniform the linked program lacks.
type LocationNotFoundError struct {
	Name string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Name)
}

// SurfaceSetupError wraps a failure to obtain the window or rendering context.
type SurfaceSetupError struct {
	Err error
}

func (e *SurfaceSetupError) Error() string {
	return fmt.Sprintf("surface setup failed: %v", e.Err)
}

func (e *SurfaceSetupError) Unwrap() error { return e.Err }
