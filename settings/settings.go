package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a sync session.
type Settings struct {
	Sync struct {
		// SendInterval is the nominal interval between sender snapshots, in
		// seconds.
		SendInterval float64
		// BufferMultiplier scales SendInterval into the playback lag. A value
		// of 3 is the usual empirical choice for 2-5% packet loss.
		BufferMultiplier float64
		// HistorySize is the applied-snapshot history capacity per entity.
		HistorySize int
		// JitterWindow is the number of arrival intervals sampled per entity.
		JitterWindow int
	}
	Log struct {
		// Level is a logrus level name, e.g. "debug" or "info".
		Level string
	}
	Stats struct {
		// Enabled toggles the statsview profiling dashboard.
		Enabled bool
		// Address is the listen address of the dashboard.
		Address string
	}
}

// DefaultSettings returns the default settings for a sync session.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Sync.SendInterval = 0.05
	settings.Sync.BufferMultiplier = 3
	settings.Sync.HistorySize = 6
	settings.Sync.JitterWindow = 32
	settings.Log.Level = "info"
	settings.Stats.Address = "localhost:18066"
	return settings
}

// BufferTime returns the intentional playback lag in seconds, derived from
// the send interval and the buffer multiplier.
func (s Settings) BufferTime() float64 {
	return s.Sync.SendInterval * s.Sync.BufferMultiplier
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file. If the file does not
// exist, a default one is written and returned.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}
