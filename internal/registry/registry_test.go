package registry

import (
	"testing"

	"github.com/vovakirdan/rainstorm/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", func() Game { return &stubGame{id: "test-zeta"} })
	Register("test-alpha", func() Game { return &stubGame{id: "test-alpha"} })

	if !Exists("test-alpha") {
		t.Fatal("expected test-alpha to be registered")
	}

	g, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test-zeta" {
		t.Errorf("expected id test-zeta, got %q", g.ID())
	}

	var alpha, zeta = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test-alpha":
			alpha = i
			if info.Title != "Stub test-alpha" {
				t.Errorf("unexpected title %q", info.Title)
			}
		case "test-zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("expected sorted list with both games, got alpha=%d zeta=%d", alpha, zeta)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
}
