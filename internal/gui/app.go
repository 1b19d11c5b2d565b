package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/view"
)

var keyActions = []struct {
	key    int32
	action view.Action
}{
	{rl.KeyUp, view.PanUp},
	{rl.KeyDown, view.PanDown},
	{rl.KeyLeft, view.PanLeft},
	{rl.KeyRight, view.PanRight},
	{rl.KeyEqual, view.ZoomIn},
	{rl.KeyKpAdd, view.ZoomIn},
	{rl.KeyMinus, view.ZoomOut},
	{rl.KeyKpSubtract, view.ZoomOut},
	{rl.KeyC, view.Recenter},
}

// App is the window front end: one simulation tick and one frame per
// loop iteration.
type App struct {
	sim     *sim.Simulator
	camera  *view.Camera
	rc      *RenderContext
	logger  *log.Logger
	running bool
	err     error
}

func NewApp(s *sim.Simulator, cam *view.Camera, rc *RenderContext, logger *log.Logger) *App {
	return &App{
		sim:     s,
		camera:  cam,
		rc:      rc,
		logger:  logger,
		running: true,
	}
}

// Run blocks until the window is closed or Q is pressed. It returns the
// error that halted the simulation, if any.
func (a *App) Run() error {
	for !rl.WindowShouldClose() {
		if a.Update() {
			break
		}
		a.Draw()
	}
	return a.err
}

// Update handles input and advances the simulation. It reports whether
// the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	for _, ka := range keyActions {
		if rl.IsKeyPressed(ka.key) {
			a.camera.Apply(ka.action)
		}
	}

	if a.running && a.err == nil {
		if err := a.sim.Step(); err != nil {
			a.logger.Error("simulation halted", "err", err)
			a.err = err
			a.running = false
		}
	}
	a.camera.Animate()
	return false
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	Draw(a.rc, a.sim.System().Snapshot(), a.camera)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	sys := a.sim.System()
	a.rc.text(fmt.Sprintf("Day %d", sys.Tick()), 10, 10, ColTextDim)

	status := "RUNNING"
	switch {
	case a.err != nil:
		status = "HALTED"
	case !a.running:
		status = "PAUSED"
	}
	a.rc.text(status, float32(a.rc.Width)-90, 10, ColTextDim)

	a.rc.text("[ARROWS] PAN  [+/-] ZOOM  [C] CENTER  [SPACE] PAUSE  [Q] QUIT", 10, float32(a.rc.Height)-24, ColTextDim)
	a.rc.text(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, float32(a.rc.Height)-44, ColTextDim)
}
