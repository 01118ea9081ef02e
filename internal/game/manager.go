package game

import (
	"fmt"

	"go.uber.org/zap"

	"chosenoffset.com/shooter/internal/config"
	"chosenoffset.com/shooter/internal/render"
)

// State is the phase the manager is in.
type State int

const (
	StatePlaying State = iota
	StateCleared
)

// Manager drives sessions for the engine: it owns the current Game, ends the
// loop on Escape and starts a fresh session on Space once a session is
// cleared.
type Manager struct {
	Config   *config.Config
	Logger   *zap.Logger
	Renderer render.Renderer
	InputMgr render.InputManager
	Loader   render.ResourceLoader
	Desktop  bool

	State    State
	Game     *Game
	Sessions int
}

// NewManager creates a new game manager.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader, log *zap.Logger, desktop bool) *Manager {
	return &Manager{
		Config:   cfg,
		Logger:   log,
		Renderer: r,
		InputMgr: input,
		Loader:   loader,
		Desktop:  desktop,
	}
}

// Setup starts the first session.
func (m *Manager) Setup() error {
	return m.startSession()
}

func (m *Manager) startSession() error {
	m.Sessions++
	g := New(m.Config, m.Renderer, m.InputMgr, m.Loader,
		m.Logger.With(zap.Int("session_number", m.Sessions)), m.Desktop)

	if err := g.Setup(); err != nil {
		return fmt.Errorf("failed to set up session %d: %w", m.Sessions, err)
	}

	m.Game = g
	m.State = StatePlaying
	return nil
}

// Update updates the current state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyPressed(render.KeyEscape) {
		return render.ErrTerminate
	}

	switch m.State {
	case StatePlaying:
		if err := m.Game.Update(); err != nil {
			return err
		}
		if m.Game.Cleared() {
			m.Logger.Info("all monsters down", zap.Duration("time", m.Game.Now))
			m.State = StateCleared
		}
	case StateCleared:
		if m.InputMgr.IsKeyJustPressed(render.KeySpace) {
			m.Game.Teardown()
			m.Game = nil
			return m.startSession()
		}
		return m.Game.Update()
	}
	return nil
}

// Draw draws the current session.
func (m *Manager) Draw(screen render.Image) {
	if m.Game != nil {
		m.Game.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Config.Window.Width, m.Config.Window.Height
}

// Teardown ends the current session.
func (m *Manager) Teardown() {
	if m.Game != nil {
		m.Game.Teardown()
		m.Game = nil
	}
}
