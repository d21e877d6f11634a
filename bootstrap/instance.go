package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// InstanceBuilder negotiates layers and extensions and creates the instance.
type InstanceBuilder struct {
	loader   Loader
	platform ExtensionSource
	logger   *slog.Logger
}

func NewInstanceBuilder(loader Loader, platform ExtensionSource, logger *slog.Logger) *InstanceBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstanceBuilder{
		loader:   loader,
		platform: platform,
		logger:   logger,
	}
}

// CheckLayerSupport enumerates the host layers and reports whether all of
// requested are among them.
func (b *InstanceBuilder) CheckLayerSupport(requested []string) (bool, error) {
	missing, err := b.MissingLayers(requested)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// MissingLayers returns the names in requested the host does not provide,
// in request order.
func (b *InstanceBuilder) MissingLayers(requested []string) ([]string, error) {
	available, err := b.loader.AvailableLayers()
	if err != nil {
		return nil, err
	}
	return missingNames(requested, available), nil
}

// CreateInstance creates the Vulkan instance described by opts. When
// diagnostics are enabled every requested layer must be present on the host.
func (b *InstanceBuilder) CreateInstance(opts InstanceOptions) (Instance, error) {
	if opts.EnableDiagnostics {
		missing, err := b.MissingLayers(opts.Layers)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			err = errors.Wrapf(ErrLayersUnavailable, "createInstance: missing %s", strings.Join(missing, ", "))
			return nil, errors.WithHint(err, "install the LunarG Vulkan SDK, or build with -tags release to run without validation")
		}
		b.logger.Info("validation layers enabled", "layers", opts.Layers)
	}

	info := BuildCreateInfo(opts, b.platform.RequiredInstanceExtensions())
	b.logger.Debug("instance extensions", "extensions", info.EnabledExtensionNames)
	b.warnUnsupported(info.EnabledExtensionNames)

	instance, res, err := b.loader.CreateInstance(info)
	if res != core1_0.VKSuccess {
		return nil, &InstanceCreationError{Code: int(res), cause: err}
	}
	if err != nil {
		return nil, errors.Wrap(err, "createInstance")
	}

	b.logger.Info("instance created", "application", opts.ApplicationName, "layers", len(info.EnabledLayerNames))
	return instance, nil
}

// warnUnsupported logs requested extensions the host does not report. The
// final say stays with instance creation itself.
func (b *InstanceBuilder) warnUnsupported(requested []string) {
	available, err := b.loader.AvailableExtensions()
	if err != nil {
		b.logger.Warn("could not enumerate instance extensions", "error", err)
		return
	}

	for _, name := range missingNames(requested, available) {
		b.logger.Warn("instance extension not reported by host", "extension", name)
	}
}

// BuildCreateInfo assembles a fresh create info. Extensions are the platform
// extensions followed by the portability enumeration extension, unfiltered.
// Layers are only set when diagnostics are enabled.
func BuildCreateInfo(opts InstanceOptions, platformExtensions []string) core1_0.InstanceCreateInfo {
	extensions := make([]string, 0, len(platformExtensions)+1)
	extensions = append(extensions, platformExtensions...)
	extensions = append(extensions, khr_portability_enumeration.ExtensionName)

	info := core1_0.InstanceCreateInfo{
		ApplicationName:       opts.ApplicationName,
		ApplicationVersion:    opts.ApplicationVersion,
		EngineName:            opts.EngineName,
		EngineVersion:         opts.EngineVersion,
		APIVersion:            opts.APIVersion,
		EnabledExtensionNames: extensions,
		Flags:                 khr_portability_enumeration.InstanceCreateEnumeratePortability,
	}

	if opts.EnableDiagnostics {
		info.EnabledLayerNames = append([]string(nil), opts.Layers...)
	}

	return info
}
