package main

import (
	"lanerunner/internal/graphics"
	"lanerunner/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[glfw.Key]string{
	glfw.KeyLeft:   input.KeyArrowLeft,
	glfw.KeyRight:  input.KeyArrowRight,
	glfw.KeyUp:     input.KeyArrowUp,
	glfw.KeyDown:   input.KeyArrowDown,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyEscape: "Escape",
	glfw.KeyEnter:  "Enter",
}

// keyName converts a GLFW key to the identifier used in bindings: arrow
// names, " " for space, lowercase letters and digits. Letters stay lowercase
// with Shift held, so a key's press and release always carry the same name
// and "r" still respawns while Shift is down.
func keyName(key glfw.Key) (string, bool) {
	if name, ok := namedKeys[key]; ok {
		return name, true
	}
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + (key - glfw.KeyA))), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + (key - glfw.Key0))), true
	}
	return "", false
}

func setupInputHandlers(window *glfw.Window, keys *input.KeyState, surface *graphics.Surface) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		handleKey(keys, key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		surface.SetViewport(fbWidth, fbHeight)
	})
}

func handleKey(keys *input.KeyState, key glfw.Key, action glfw.Action) {
	name, ok := keyName(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		keys.Press(name)
		logger.Debug("key down", "key", name, "held", keys.Keys())
	case glfw.Release:
		keys.Release(name)
		logger.Debug("key up", "key", name, "held", keys.Keys())
	}
}
