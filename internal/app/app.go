package app

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pachinko/internal/audio"
	"github.com/diegok/pachinko/internal/clock"
	"github.com/diegok/pachinko/internal/config"
	"github.com/diegok/pachinko/internal/game"
	"github.com/diegok/pachinko/internal/input"
	"github.com/diegok/pachinko/internal/ui"
)

// SlowMotionScale multiplies the clock speed while T is held
const SlowMotionScale = 0.1

// App is the main application controller that owns the frame loop.
type App struct {
	cfg      *config.Config
	settings game.Settings
	rng      *rand.Rand
	screen   *ui.Screen
	renderer *ui.Renderer

	clock  *clock.Clock
	input  *input.State
	modeID game.ModeID
	mode   game.Mode

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App showing the configured start mode. A nil
// provider uses the system clock.
func NewApp(cfg *config.Config, settings game.Settings, provider clock.TimeProvider) *App {
	a := &App{
		cfg:      cfg,
		settings: settings,
		rng:      game.NewRand(cfg.Seed),
		clock:    clock.New(provider),
		input:    input.NewState(input.DefaultHoldFrames),
		quit:     make(chan struct{}),
	}
	id, _ := game.ModeFromName(cfg.Mode)
	a.setMode(id)
	return a
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the frame loop.
func (a *App) Run() error {
	// Initialize audio (ignore errors - the simulation works without sound)
	if err := audio.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.settings.Bounds())

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop polls events and draws a frame on every tick.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// Ticker for rendering at ~60fps
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.update()
			a.renderer.Frame(a.mode, a.status())
		}
	}
}

// handleEvent processes keyboard and mouse events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if key, ok := ui.KeyFromEvent(ev); ok {
			a.handleKey(key)
		}

	case *tcell.EventMouse:
		w, h := a.screen.Size()
		ui.ApplyMouse(a.input, ev, w, h)
	}

	return false
}

func (a *App) handleKey(key input.Key) {
	a.input.Press(key)
}

// update runs one frame: mode switching, clock, simulation, sound.
func (a *App) update() {
	if a.input.WasKeyJustPressed(input.KeyF6) {
		a.setMode(a.modeID.Prev())
	}
	if a.input.WasKeyJustPressed(input.KeyF7) {
		a.setMode(a.modeID.Next())
	}

	a.clock.SetTimeScale(a.timeScale())
	a.clock.Tick()
	a.mode.Update(a.clock.DeltaSeconds(), a.input)
	a.playContacts()
	a.input.EndFrame()
}

// setMode replaces the current mode with a fresh instance.
func (a *App) setMode(id game.ModeID) {
	a.modeID = id
	a.mode = game.NewMode(id, a.settings, a.rng, a.cfg.FixedStep)
	log.Printf("mode: %s", a.mode.Name())
}

func (a *App) timeScale() float64 {
	scale := 1.0
	if scaler, ok := a.mode.(game.TimeScaler); ok {
		scale = scaler.TimeScale()
	}
	if a.input.IsKeyDown(input.KeyT) {
		scale *= SlowMotionScale
	}
	return scale
}

// playContacts plays at most one cue per contact kind per frame.
func (a *App) playContacts() {
	reporter, ok := a.mode.(game.ContactReporter)
	if !ok {
		return
	}
	c := reporter.DrainContacts()
	if c.Balls > 0 {
		audio.PlayBallHit()
	}
	if c.Bumpers > 0 {
		audio.PlayBumperHit(c.BumperElasticity)
	}
	if c.Walls > 0 {
		audio.PlayWallBounce()
	}
}

func (a *App) status() string {
	return fmt.Sprintf(" %s | F6/F7 mode, T slow motion, q quit | dt %.1fms (%.0f fps) x%.1f",
		a.mode.Name(), a.clock.DeltaSeconds()*1000, a.clock.FrameRate(), a.clock.TimeScale())
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
