//go:build darwin && cgo

package darwin

import "github.com/coreframe/macui-agent/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		reader := NewReader()
		return &platform.Provider{
			Reader:           reader,
			Inputter:         NewInputter(),
			WindowManager:    NewWindowManager(reader),
			Screenshotter:    NewScreenshotter(reader),
			ActionPerformer:  NewActionPerformer(reader),
			ProcessManager:   NewProcessManager(),
			Permissions:      NewPermissionProbe(),
			ClipboardManager: NewClipboard(),
		}, nil
	}
}
