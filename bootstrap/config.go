package bootstrap

import (
	"github.com/vkngwrapper/core/v3/common"
)

// ValidationLayers are requested whenever diagnostics are enabled.
var ValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

type InstanceOptions struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	// EnableDiagnostics gates the layer check and whether Layers reach the
	// create info at all.
	EnableDiagnostics bool
	Layers            []string
}

type Config struct {
	Window   WindowConfig
	Instance InstanceOptions
}

// DefaultConfig returns the fixed startup configuration. Diagnostics follow
// the build: on by default, off when built with -tags release.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Relive",
			Width:  800,
			Height: 600,
		},
		Instance: InstanceOptions{
			ApplicationName:    "ReLive",
			ApplicationVersion: common.CreateVersion(1, 0, 0),
			EngineName:         "No Engine",
			EngineVersion:      common.CreateVersion(1, 0, 0),
			APIVersion:         common.Vulkan1_0,
			EnableDiagnostics:  enableValidationLayers,
			Layers:             ValidationLayers,
		},
	}
}
