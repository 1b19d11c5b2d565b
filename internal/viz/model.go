package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/view"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	minCanvas       = 10
)

type TickMsg time.Time

// Model runs one simulation tick per frame and renders the system to a
// Braille canvas beside a status panel.
type Model struct {
	sim      *sim.Simulator
	sys      *solar.System
	camera   *view.Camera
	canvas   *Canvas
	theme    Theme
	styles   styles
	fps      int
	running  bool
	showHelp bool
	focus    int
	history  [][]float64
	err      error
}

// NewModel wraps a simulator and camera. fps is the frame and tick rate.
func NewModel(s *sim.Simulator, cam *view.Camera, fps int, theme string) Model {
	sys := s.System()
	t := GetTheme(theme)
	m := Model{
		sim:     s,
		sys:     sys,
		camera:  cam,
		canvas:  NewCanvas(width, height),
		theme:   t,
		styles:  newStyles(t),
		fps:     fps,
		running: true,
		focus:   sys.StarIndex(),
		history: make([][]float64, sys.Len()),
	}
	m.cycleFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.fps
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "tab":
			m.cycleFocus()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		default:
			m.camera.Apply(view.ActionForKey(msg.String()))
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		m.camera.Animate()
		return m, m.tick()
	}
	return m, nil
}

// step advances the simulation by one tick. A failed tick pauses the model
// and leaves the error on screen.
func (m *Model) step() {
	if err := m.sim.Step(); err != nil {
		m.err = err
		m.running = false
		return
	}
	for i, b := range m.sys.Bodies() {
		h := append(m.history[i], b.DistanceToStar/1000)
		if len(h) > historyCapacity {
			h = h[1:]
		}
		m.history[i] = h
	}
}

// cycleFocus moves the focus to the next body that is not the star.
func (m *Model) cycleFocus() {
	n := m.sys.Len()
	for k := 1; k <= n; k++ {
		i := (m.focus + k) % n
		if !m.sys.At(i).Star {
			m.focus = i
			return
		}
	}
}

func (m *Model) resize(w, h int) {
	cw := w - panelWidth - 8
	ch := h - 3
	if cw < minCanvas {
		cw = minCanvas
	}
	if ch < minCanvas {
		ch = minCanvas
	}
	m.canvas = NewCanvas(cw, ch)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.String())

	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("SOLAR SYSTEM") + "\n")

	switch {
	case m.err != nil:
		s.WriteString(st.err.Render("HALTED") + "\n")
	case m.running:
		s.WriteString(st.running.Render("RUNNING") + "\n")
	default:
		s.WriteString(st.paused.Render("PAUSED") + "\n")
	}
	s.WriteString("\n")
	s.WriteString(st.label.Render("Day") + st.value.Render(fmt.Sprintf("%d", m.sys.Tick())) + "\n")
	s.WriteString(st.label.Render("Zoom") + st.value.Render(fmt.Sprintf("%.2fx", m.camera.TargetZoom())) + "\n")
	s.WriteString(st.label.Render("Theme") + st.value.Render(m.theme.Name) + "\n\n")

	for i, b := range m.sys.Bodies() {
		if b.Star {
			continue
		}
		line := fmt.Sprintf("%-8s %8.3f AU", b.Name, b.DistanceToStar/solar.AU)
		if i == m.focus {
			s.WriteString(st.focus.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	if hist := m.history[m.focus]; len(hist) > 1 {
		caption := m.sys.At(m.focus).Name + " distance (km)"
		chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(panelWidth-22), asciigraph.Caption(caption))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + st.err.Render(m.err.Error()) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause TAB:Focus Q:Quit\n←↑↓→:Pan +/-:Zoom ?:Help"))

	panelView := st.panel.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
	if m.showHelp {
		help := strings.Join([]string{
			"KEYBOARD SHORTCUTS",
			"",
			"Arrows   pan the view",
			"+ / =    zoom in",
			"-        zoom out",
			"c        recenter",
			"Space    pause / resume",
			"Tab      focus next body",
			"t        cycle themes",
			"?        toggle this help",
			"q        quit",
		}, "\n")
		return st.overlay.Render(help) + "\n\n" + mainView
	}
	return mainView
}

// draw renders trails, bodies and labels onto the canvas.
func (m *Model) draw() {
	c := m.canvas
	c.Clear()

	cw, ch := float64(c.SubWidth()), float64(c.SubHeight())
	scale := math.Min(cw/m.camera.Width, ch/m.camera.Height)
	ox := (cw - m.camera.Width*scale) / 2
	oy := (ch - m.camera.Height*scale) / 2
	project := func(p r2.Vec) (int, int) {
		x, y := m.camera.Project(p)
		return int(ox + x*scale), int(oy + y*scale)
	}

	bodies := m.sys.Bodies()
	for _, b := range bodies {
		if len(b.Trail) < 3 {
			continue
		}
		c.Pen(bodyColor(b.Color))
		x0, y0 := project(b.Trail[0])
		for _, p := range b.Trail[1:] {
			x1, y1 := project(p)
			if m.near(x0, y0) && m.near(x1, y1) {
				c.DrawLine(x0, y0, x1, y1)
			}
			x0, y0 = x1, y1
		}
	}

	for _, b := range bodies {
		x, y := project(b.Pos)
		c.Pen(bodyColor(b.Color))
		c.FillCircle(x, y, m.camera.ProjectRadius(b.Radius)*scale)
	}

	c.Pen(m.theme.Label)
	for _, b := range bodies {
		if b.Star {
			continue
		}
		x, y := project(b.Pos)
		col, row := x/2, y/4
		dist := fmt.Sprintf("%.1f km", b.DistanceToStar/1000)
		c.Text(col-len(b.Name)/2, row-1, b.Name)
		c.Text(col-len(dist)/2, row+1, dist)
	}
}

// near reports whether a sub-pixel lies within one canvas size of the
// visible area, which bounds the work of a single line segment.
func (m *Model) near(x, y int) bool {
	w, h := m.canvas.SubWidth(), m.canvas.SubHeight()
	return x >= -w && x < 2*w && y >= -h && y < 2*h
}

// Focus returns the name of the focused body.
func (m Model) Focus() string {
	return m.sys.At(m.focus).Name
}

// Err returns the error that halted the simulation, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the TUI on the alternate screen and blocks until quit.
func Run(m Model) error {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
