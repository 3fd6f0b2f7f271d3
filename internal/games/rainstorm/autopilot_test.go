package rainstorm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rainstorm/internal/core"
)

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(w *World)
		held    []core.Action
		pressed []core.Action
	}{
		{
			name:  "no zombies",
			setup: func(*World) {},
		},
		{
			name:  "fires at aligned zombie",
			setup: func(w *World) { place(w.Enemies(), 600, 405) },
			held:  []core.Action{core.ActionFire},
		},
		{
			name:  "turns toward zombie behind",
			setup: func(w *World) { place(w.Enemies(), 200, 405) },
			held:  []core.Action{core.ActionLeft},
		},
		{
			name:  "climbs to zombie above",
			setup: func(w *World) { place(w.Enemies(), 600, 340) },
			held:  []core.Action{core.ActionUp},
		},
		{
			name: "ignores dying zombies",
			setup: func(w *World) {
				place(w.Enemies(), 450, 405).kill()
				place(w.Enemies(), 200, 405)
			},
			held: []core.Action{core.ActionLeft},
		},
		{
			name:    "reloads when empty",
			setup:   func(w *World) { w.Player().ammo = 0; place(w.Enemies(), 600, 405) },
			pressed: []core.Action{core.ActionReload},
			held:    []core.Action{core.ActionReload},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, testConfig(), 1)
			tt.setup(w)

			in := Autopilot(w)

			assert.ElementsMatch(t, tt.held, keys(in.Held))
			assert.ElementsMatch(t, tt.pressed, keys(in.Pressed))
		})
	}
}

func TestAutopilotSurvivesAndKills(t *testing.T) {
	w := newTestWorld(t, testConfig(), 21)

	for i := 0; i < 60*60 && !w.Player().IsDead(); i++ {
		w.Step(Autopilot(w), 1.0/60)
	}

	assert.Positive(t, w.Kills())
	assert.Positive(t, w.Player().Score())
}

func keys(m map[core.Action]bool) []core.Action {
	var out []core.Action
	for a, ok := range m {
		if ok {
			out = append(out, a)
		}
	}
	return out
}
