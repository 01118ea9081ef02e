package game

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"chosenoffset.com/shooter/internal/arcade"
	"chosenoffset.com/shooter/internal/entity"
	"chosenoffset.com/shooter/internal/render"
	"chosenoffset.com/shooter/internal/render/rendertest"
)

func newTestManager(t *testing.T) (*Manager, *inputState) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := newInputState()
	cfg := testConfig(t, spawnMap(arcade.Vec{X: 300, Y: 300}))

	m := NewManager(cfg, &rendertest.Renderer{}, newMockInput(ctrl, st), newMockLoader(ctrl), zap.NewNop(), true)
	if err := m.Setup(); err != nil {
		t.Fatalf("Failed to set up manager: %v", err)
	}
	return m, st
}

func TestManagerEscapeTerminates(t *testing.T) {
	m, st := newTestManager(t)

	if err := m.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	st.keys[render.KeyEscape] = true
	if err := m.Update(); !errors.Is(err, render.ErrTerminate) {
		t.Errorf("Expected ErrTerminate, got %v", err)
	}
}

func TestManagerRestartsClearedSession(t *testing.T) {
	m, st := newTestManager(t)

	st.just[render.KeySpace] = true
	if err := m.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Sessions != 1 {
		t.Fatalf("Expected Space to do nothing mid-session, got %d sessions", m.Sessions)
	}
	st.just[render.KeySpace] = false

	m.Game.Monsters.ForEach(func(s *entity.Sprite) { s.Kill() })
	if err := m.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.State != StateCleared {
		t.Fatalf("Expected cleared state, got %v", m.State)
	}

	old := m.Game
	st.just[render.KeySpace] = true
	if err := m.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if m.Sessions != 2 {
		t.Errorf("Expected a second session, got %d", m.Sessions)
	}
	if m.State != StatePlaying {
		t.Errorf("Expected playing state, got %v", m.State)
	}
	if m.Game == old {
		t.Error("Expected a fresh game")
	}
	if m.Game.Monsters.CountAlive() != 1 {
		t.Errorf("Expected monsters back, got %d alive", m.Game.Monsters.CountAlive())
	}
}

func TestManagerLayoutAndTeardown(t *testing.T) {
	m, _ := newTestManager(t)

	if w, h := m.Layout(1920, 1080); w != 1024 || h != 600 {
		t.Errorf("Expected 1024x600 layout, got %dx%d", w, h)
	}

	m.Draw(rendertest.NewImage(1024, 600))
	m.Teardown()

	if m.Game != nil {
		t.Error("Expected no game after teardown")
	}
	m.Draw(rendertest.NewImage(1024, 600))
}
