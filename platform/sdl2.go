//go:build !glfw

package platform

import (
	"log/slog"
	"unsafe"

	"github.com/relive-gfx/relive/bootstrap"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL2 window created for Vulkan use. It cannot be resized.
type Window struct {
	window *sdl.Window
	logger *slog.Logger

	closeRequested bool
	closed         bool
}

// Open initializes SDL's video subsystem and creates the window. On failure
// SDL is shut down again before returning.
func Open(cfg bootstrap.WindowConfig, logger *slog.Logger) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, bootstrap.WindowCreationError(err, "initialize sdl")
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil || window == nil {
		sdl.Quit()
		return nil, bootstrap.WindowCreationError(err, "create sdl window")
	}

	logger.Info("window opened", "backend", "sdl2", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return &Window{window: window, logger: logger}, nil
}

func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closeRequested = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.closeRequested = true
			}
		}
	}
}

func (w *Window) ShouldClose() bool {
	return w.closeRequested
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) InstanceProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *Window) Shutdown() {
	if w.closed {
		return
	}
	w.closed = true

	w.window.Destroy()
	sdl.Quit()
	w.logger.Debug("window destroyed", "backend", "sdl2")
}
