package systems

import (
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, creating it from the
// config defaults on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Settings))
	settings := components.Settings.Get(entry)
	settings.Debug = cfg.Debug.Overlay
	if loadedOptions != nil {
		settings.Debug = settings.Debug || loadedOptions.Debug
		settings.LevelIndex = loadedOptions.LevelIndex
	}
	return settings
}
