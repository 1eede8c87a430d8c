package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// PrefsPath is the sqlite database holding the persisted theme
	// preference.
	PrefsPath string `envconfig:"PREFS_PATH" default:"nebula.db"`

	// RecentUsersLimit is the preview length of the dashboard's
	// recent-users table.
	RecentUsersLimit int `envconfig:"RECENT_USERS_LIMIT" default:"3"`

	// SeedDemoData preloads the demo users and plan on startup.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
