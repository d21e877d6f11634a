// Package platform provides the window backend. SDL2 is used by default;
// building with -tags glfw selects GLFW instead. Both must be used from the
// main OS thread.
package platform

import "github.com/relive-gfx/relive/bootstrap"

var _ bootstrap.Window = (*Window)(nil)
