package entity

import "time"

// BrowserOptions are the launch flags of a browser session. Every option is
// independent; the zero value launches a headful browser with a temporary profile.
type BrowserOptions struct {
	Headless            bool
	DisableGPU          bool
	NoSandbox           bool
	DisableDevShmUsage  bool
	UserDataDir         string
	RemoteDebuggingPort int
	BinPath             string
	SlowMotion          time.Duration
}

func DefaultBrowserOptions() BrowserOptions {
	return BrowserOptions{
		Headless:           true,
		DisableGPU:         true,
		NoSandbox:          true,
		DisableDevShmUsage: true,
	}
}
