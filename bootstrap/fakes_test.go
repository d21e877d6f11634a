package bootstrap

import (
	"io"
	"log/slog"
	"unsafe"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// events collects lifecycle calls across fakes so their order can be checked.
type events []string

func (e *events) add(name string) {
	*e = append(*e, name)
}

type fakeLoader struct {
	layers        []string
	extensions    []string
	layersErr     error
	extensionsErr error

	result    common.VkResult
	createErr error

	created []core1_0.InstanceCreateInfo
	calls   []string
	log     *events
}

func (l *fakeLoader) AvailableLayers() ([]string, error) {
	l.calls = append(l.calls, "layers")
	return l.layers, l.layersErr
}

func (l *fakeLoader) AvailableExtensions() ([]string, error) {
	l.calls = append(l.calls, "extensions")
	return l.extensions, l.extensionsErr
}

func (l *fakeLoader) CreateInstance(info core1_0.InstanceCreateInfo) (Instance, common.VkResult, error) {
	l.calls = append(l.calls, "create")
	l.created = append(l.created, info)
	if l.createErr != nil || l.result != core1_0.VKSuccess {
		return nil, l.result, l.createErr
	}
	return &fakeInstance{log: l.log}, l.result, nil
}

type fakeInstance struct {
	log       *events
	destroyed int
}

func (i *fakeInstance) Destroy() {
	i.destroyed++
	if i.log != nil {
		i.log.add("instance-destroy")
	}
}

type fakeWindow struct {
	extensions []string
	closeAfter int

	polls          int
	extensionCalls int
	log            *events
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	w.extensionCalls++
	return w.extensions
}

func (w *fakeWindow) PollEvents() {
	w.polls++
}

func (w *fakeWindow) ShouldClose() bool {
	return w.polls >= w.closeAfter
}

func (w *fakeWindow) InstanceProcAddr() unsafe.Pointer {
	return nil
}

func (w *fakeWindow) Shutdown() {
	w.log.add("window-destroy")
	w.log.add("library-terminate")
}
