package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the input component.
// Must run BEFORE every system that reads actions. Intent flags derived
// from this state are applied to the simulation between ticks only.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetAction returns the temporal state for an action, computed by comparing
// the current and previous frames.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Input))
	return components.Input.Get(entry)
}
