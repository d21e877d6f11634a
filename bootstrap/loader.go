package bootstrap

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Loader is the part of the Vulkan global API needed to bring up an instance.
type Loader interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(info core1_0.InstanceCreateInfo) (Instance, common.VkResult, error)
}

// Instance is an owned Vulkan instance handle.
type Instance interface {
	Destroy()
}

// VulkanLoader implements Loader on top of a vkngwrapper global driver.
type VulkanLoader struct {
	driver core1_0.GlobalDriver
}

// NewLoader builds a VulkanLoader from the vkGetInstanceProcAddr exposed by
// the windowing library.
func NewLoader(procAddr unsafe.Pointer) (*VulkanLoader, error) {
	if procAddr == nil {
		return nil, errors.New("windowing library did not provide vkGetInstanceProcAddr")
	}

	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "load vulkan")
	}

	return &VulkanLoader{driver: driver}, nil
}

func (l *VulkanLoader) AvailableLayers() ([]string, error) {
	layers, _, err := l.driver.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate instance layers")
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	return names, nil
}

func (l *VulkanLoader) AvailableExtensions() ([]string, error) {
	extensions, _, err := l.driver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate instance extensions")
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	return names, nil
}

func (l *VulkanLoader) CreateInstance(info core1_0.InstanceCreateInfo) (Instance, common.VkResult, error) {
	instance, res, err := l.driver.CreateInstance(nil, info)
	if err != nil {
		return nil, res, err
	}

	instanceDriver, err := l.driver.BuildInstanceDriver(instance)
	if err != nil {
		return nil, res, errors.Wrap(err, "build instance driver")
	}

	return &vulkanInstance{driver: instanceDriver}, res, nil
}

type vulkanInstance struct {
	driver core1_0.CoreInstanceDriver
}

func (i *vulkanInstance) Destroy() {
	i.driver.DestroyInstance(nil)
}
