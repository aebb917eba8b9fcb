package domain

import "time"

// Store backend names for [tasks].store.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config is the technical application configuration loaded from
// config.toml. User-facing preferences live in Settings instead.
type Config struct {
	DataDir string       `toml:"data_dir"` // State directory (empty = XDG data dir)
	Tasks   TasksConfig  `toml:"tasks"`
	Notify  NotifyConfig `toml:"notify"`
	Log     LogConfig    `toml:"log"`
}

// TasksConfig holds task store settings from the [tasks] section.
type TasksConfig struct {
	Store string `toml:"store"` // "json" (default) or "sqlite"
}

// NotifyConfig holds notification settings from the [notify] section.
type NotifyConfig struct {
	Command            string `toml:"command"`              // Desktop notification program
	PollInterval       string `toml:"poll_interval"`        // Reminder daemon scan interval
	RescheduleOnReopen bool   `toml:"reschedule_on_reopen"` // Re-arm reminders when a task is un-completed
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{Store: StoreJSON},
		Notify: NotifyConfig{
			Command:            "notify-send",
			PollInterval:       "1m",
			RescheduleOnReopen: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// PollInterval parses the daemon scan interval, falling back to one
// minute on absent or malformed values.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Notify.PollInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}
