//go:build glfw

package platform

import (
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/relive-gfx/relive/bootstrap"
)

// Window is a GLFW window with no client API context. It cannot be resized.
type Window struct {
	window *glfw.Window
	logger *slog.Logger

	closed bool
}

// Open initializes GLFW and creates the window. On failure GLFW is
// terminated again before returning.
func Open(cfg bootstrap.WindowConfig, logger *slog.Logger) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := glfw.Init(); err != nil {
		return nil, bootstrap.WindowCreationError(err, "initialize glfw")
	}

	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, bootstrap.WindowCreationError(errors.New("vulkan loader not found"), "initialize glfw")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil || window == nil {
		glfw.Terminate()
		return nil, bootstrap.WindowCreationError(err, "create glfw window")
	}

	logger.Info("window opened", "backend", "glfw", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return &Window{window: window, logger: logger}, nil
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

func (w *Window) InstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (w *Window) Shutdown() {
	if w.closed {
		return
	}
	w.closed = true

	w.window.Destroy()
	glfw.Terminate()
	w.logger.Debug("window destroyed", "backend", "glfw")
}
