package main

import (
	"lanerunner/internal/graphics"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(title string, vsync bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(graphics.SurfaceWidth, graphics.SurfaceHeight, title, nil, nil)
	if err != nil {
		return nil, &graphics.SurfaceSetupError{Err: err}
	}
	window.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		// we'll use our own FPS limiter
		glfw.SwapInterval(0)
	}

	return window, nil
}

// glfwHost runs the frame loop inside a GLFW window.
type glfwHost struct {
	window *glfw.Window
}

func (h *glfwHost) ShouldClose() bool { return h.window.ShouldClose() }
func (h *glfwHost) Present()          { h.window.SwapBuffers() }
func (h *glfwHost) PollEvents()       { glfw.PollEvents() }
