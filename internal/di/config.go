package di

import (
	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
	"portal-automation/internal/infrastructure/logger"
	"portal-automation/internal/usecase/login"
	"portal-automation/internal/usecase/search"
)

type Config struct {
	TaskName    string
	Log         logger.Config
	Browser     entity.BrowserOptions
	Login       login.Config
	SearchURL   string
	SnapshotDir string
}

// ConfigFromEnv reads every knob from the environment, falling back to the
// package defaults.
func ConfigFromEnv(env output.ConfigPort, taskName string) Config {
	browser := entity.DefaultBrowserOptions()
	loginDefaults := login.DefaultConfig()
	logDefaults := logger.DefaultConfig()

	return Config{
		TaskName: taskName,
		Log: logger.Config{
			Dir:     env.GetWithDefault("LOG_DIR", logDefaults.Dir),
			Level:   env.GetWithDefault("LOG_LEVEL", logDefaults.Level),
			Console: env.GetBool("LOG_CONSOLE", logDefaults.Console),
		},
		Browser: entity.BrowserOptions{
			Headless:            env.GetBool("BROWSER_HEADLESS", browser.Headless),
			DisableGPU:          env.GetBool("BROWSER_DISABLE_GPU", browser.DisableGPU),
			NoSandbox:           env.GetBool("BROWSER_NO_SANDBOX", browser.NoSandbox),
			DisableDevShmUsage:  env.GetBool("BROWSER_DISABLE_DEV_SHM", browser.DisableDevShmUsage),
			UserDataDir:         env.Get("BROWSER_USER_DATA_DIR"),
			RemoteDebuggingPort: env.GetInt("BROWSER_REMOTE_DEBUG_PORT", 0),
			BinPath:             env.Get("BROWSER_BIN"),
			SlowMotion:          env.GetDuration("BROWSER_SLOW_MOTION", 0),
		},
		Login: login.Config{
			PortalURL:           env.GetWithDefault("PORTAL_URL", loginDefaults.PortalURL),
			LoginSelector:       env.GetWithDefault("PORTAL_LOGIN_SELECTOR", loginDefaults.LoginSelector),
			PasswordSelector:    env.GetWithDefault("PORTAL_PASSWORD_SELECTOR", loginDefaults.PasswordSelector),
			SubmitSelector:      env.GetWithDefault("PORTAL_SUBMIT_SELECTOR", loginDefaults.SubmitSelector),
			SuccessURLSubstring: env.GetWithDefault("PORTAL_SUCCESS_URL", loginDefaults.SuccessURLSubstring),
			StepTimeout:         env.GetDuration("PORTAL_STEP_TIMEOUT", loginDefaults.StepTimeout),
		},
		SearchURL:   env.GetWithDefault("SEARCH_BASE_URL", search.DefaultBaseURL),
		SnapshotDir: env.Get("SNAPSHOT_DIR"),
	}
}
