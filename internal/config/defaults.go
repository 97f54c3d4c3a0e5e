package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"storage": map[string]interface{}{
			"driver": DriverFile,
			"path":   "~/.reminders/items.json",
		},
		"scheduler": map[string]interface{}{
			"interval":   30, // Check every 30 seconds
			"tolerance":  60, // Must exceed interval so no minute is skipped
			"visibility": 10,
		},
		"ui": map[string]interface{}{
			"colored_output": true,
		},
		"log": map[string]interface{}{
			"file": "~/.reminders/reminders.log",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.reminders/config.yaml"
}
