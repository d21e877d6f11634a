package bootstrap

import "unsafe"

// ExtensionSource supplies the instance extensions a windowing library needs
// in order to present to its windows.
type ExtensionSource interface {
	RequiredInstanceExtensions() []string
}

// Window owns the windowing library and exactly one window.
type Window interface {
	ExtensionSource

	// PollEvents drains pending OS events without blocking.
	PollEvents()
	ShouldClose() bool
	InstanceProcAddr() unsafe.Pointer

	// Shutdown destroys the window, then terminates the library.
	Shutdown()
}

// WindowOpener initializes the windowing library and creates a window.
type WindowOpener func(cfg WindowConfig) (Window, error)
