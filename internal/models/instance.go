package models

import "time"

// InstanceInfo identifies the running tray process.
// This corresponds to ~/.platewatch/tray.yaml.
type InstanceInfo struct {
	Version   int       `yaml:"version"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(pid int) *InstanceInfo {
	return &InstanceInfo{
		Version:   1,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
