package models

import "time"

// ReaderConfig holds settings for reading plates from the game window.
type ReaderConfig struct {
	// Command is run to capture the window text. Exit status 2 means the
	// window could not be found.
	Command           []string `yaml:"command"`
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
	RetryDelaySeconds int      `yaml:"retry_delay_seconds"`
}

// Timeout returns the read timeout, falling back to the default.
func (c ReaderConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultReadTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the delay between read attempts, falling back to the default.
func (c ReaderConfig) RetryDelay() time.Duration {
	if c.RetryDelaySeconds <= 0 {
		return DefaultRetryDelay
	}
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings represents global application settings.
// This corresponds to ~/.platewatch/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Reader        ReaderConfig        `yaml:"reader"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// Reader defaults.
const (
	DefaultReadTimeout = 15 * time.Second
	DefaultRetryDelay  = time.Second
)

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Reader: ReaderConfig{
			Command:           []string{"platewatch-capture"},
			TimeoutSeconds:    int(DefaultReadTimeout / time.Second),
			RetryDelaySeconds: int(DefaultRetryDelay / time.Second),
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}
