package registry

import (
	"testing"

	"github.com/vovakirdan/spider-run/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	var sawA, sawB bool
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		switch info.ID {
		case "zz_stub_a":
			sawA = info.Title == "Stub zz_stub_a"
		case "zz_stub_b":
			sawB = true
		}
	}
	if !sawA || !sawB {
		t.Errorf("List() missing stubs or titles: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("does_not_exist") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return stubGame{id: "zz_stub_dup"} })
}
