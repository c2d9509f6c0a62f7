package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdshot/internal/assets"
	"github.com/vovakirdan/birdshot/internal/audio"
	"github.com/vovakirdan/birdshot/internal/core"
)

// footerLines is the height reserved below the playfield for key hints.
const footerLines = 1

// Game is a simulation the terminal loop can drive one tick at a time.
// Implementations know nothing about Bubble Tea.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh run. Equal configs give equal runs.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst, scaled to its size.
	Render(dst *core.Screen)
	State() core.GameState
}

// Options carries the collaborators of the terminal loop.
type Options struct {
	Player    audio.Player
	Logger    *log.Logger
	HoldTicks int           // Ticks a direction stays held per key press
	EndSound  time.Duration // How long the end sound plays after game over
	Pause     time.Duration // Pause after the end sound before exiting
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	inCoda     bool // Game over: ticks stopped, keys ignored
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerLines),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		held:       NewHeldKeys(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case codaDoneMsg:
		m.opts.Logger.Info("exiting after game over", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey turns a key press into input for the next tick.
// Keys are dropped once the game is over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inCoda {
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.opts.Logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionFire:
		m.inputFrame.Set(a)
	case core.ActionNone:
	default:
		m.held.Press(a)
	}

	return m, nil
}

// handleResize rescales the playfield. The run is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerLines)
	m.help.Width = msg.Width

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inCoda {
		return m, nil
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.held.Tick()
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventHazardDestroyed:
			m.opts.Player.Play(assets.SoundHit)
			m.opts.Logger.Debug("hazard destroyed", "x", ev.X, "y", ev.Y, "score", result.State.Score)
		case core.EventHazardsCleared:
			m.opts.Logger.Info("all hazards destroyed", "score", result.State.Score)
		case core.EventBeamFired:
			m.opts.Logger.Debug("beam fired", "x", ev.X, "y", ev.Y)
		}
	}

	if result.Has(core.EventGameOver) {
		m.inCoda = true
		m.held.Release()
		m.opts.Logger.Info("game over", "score", result.State.Score)
		return m, codaCmd(m.opts.Player, m.opts.Logger, m.opts.EndSound, m.opts.Pause)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// Run blocks until the player quits or the game-over coda finishes.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	if _, err := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
