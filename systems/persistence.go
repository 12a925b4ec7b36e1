package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/tilehop/gemdash/components"
)

// SavedOptions represents the options data stored on disk. Game progress is
// deliberately not persisted; only player-facing options survive a restart.
type SavedOptions struct {
	Debug      bool `json:"debug"`
	LevelIndex int  `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for options storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gemdash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadOptions loads options from disk. A missing or unreadable store is not
// an error; the caller just keeps the defaults.
func LoadOptions() (*SavedOptions, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("options")
	if err != nil {
		log.Printf("Warning: Could not load options: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var opts SavedOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		log.Printf("Warning: Could not parse saved options: %v", err)
		return nil, err
	}
	return &opts, nil
}

// SaveOptions saves options to disk.
func SaveOptions(o *SavedOptions) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(o)
	if err != nil {
		log.Printf("Warning: Could not serialize options: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("options", data); err != nil {
		log.Printf("Warning: Could not save options: %v", err)
		return err
	}
	return nil
}

// SaveCurrentOptions saves the current settings component state.
func SaveCurrentOptions(s *components.SettingsData) {
	_ = SaveOptions(&SavedOptions{
		Debug:      s.Debug,
		LevelIndex: s.LevelIndex,
	})
}

// ApplySavedOptionsGlobal stashes loaded options before any scene exists;
// each scene's settings singleton is seeded from them on creation.
func ApplySavedOptionsGlobal(saved *SavedOptions) {
	loadedOptions = saved
}

var loadedOptions *SavedOptions
