package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/pick"
)

const (
	panelWidth  = 34
	minCanvas   = 10
	barWidth    = 10
	rotateStep  = 0.1
	dollyFactor = 1.1
)

type TickMsg time.Time

// App hosts an orrery system in a terminal: it schedules frame ticks,
// forwards pointer input to picking and camera controls, and draws the
// rendered canvas next to the control panel.
type App struct {
	sys    *orrery.System
	raster *Rasterizer

	interval      time.Duration
	width, height int
	cols, rows    int

	showHelp bool
	editing  bool
	editBuf  string

	dragging     bool
	dragX, dragY int
}

// NewApp binds a rasterizer to sys's driver. fps sets the tick rate.
func NewApp(sys *orrery.System, fps int) App {
	raster := NewRasterizer(80, 24)
	sys.Driver.SetRenderer(raster)
	sys.Resolver.Bias = TooltipBias
	a := App{sys: sys, raster: raster, interval: frame.Interval(fps)}
	a.resize(80+panelWidth, 24)
	return a
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		a.sys.Driver.Step()
		return a, a.tick()
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// resize gives the canvas everything left of the panel.
func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.cols = max(width-panelWidth, minCanvas)
	a.rows = max(height, minCanvas/2)
	a.sys.Driver.Resize(a.cols*2, a.rows*4)
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	inside := msg.X >= 0 && msg.X < a.cols && msg.Y >= 0 && msg.Y < a.rows
	if inside {
		p := pick.PointerFromCell(msg.X, msg.Y, a.cols, a.rows)
		a.sys.State.SetPointer(p.X, p.Y)
	} else {
		a.sys.State.ClearPointer()
	}

	ctl := a.sys.Controls
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ctl.Dolly(1 / dollyFactor)
	case msg.Button == tea.MouseButtonWheelDown:
		ctl.Dolly(dollyFactor)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		a.dragging, a.dragX, a.dragY = true, msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		a.dragging = false
	case msg.Action == tea.MouseActionMotion && a.dragging:
		// Cells are twice as tall as wide; scale both axes by the viewport
		// height in sub-pixels so a full-height drag turns a full circle.
		h := float64(a.rows * 4)
		ctl.RotateLeft(2 * math.Pi * float64((msg.X-a.dragX)*2) / h)
		ctl.RotateUp(2 * math.Pi * float64((msg.Y-a.dragY)*4) / h)
		a.dragX, a.dragY = msg.X, msg.Y
	}
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		return a.editKey(msg)
	}
	st, ctl, panel := a.sys.State, a.sys.Controls, a.sys.Panel
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case " ":
		st.TogglePause()
	case "t":
		st.ToggleTheme()
	case "tab":
		panel.Next()
	case "shift+tab":
		panel.Prev()
	case "right", "l":
		if s := panel.Focused(); s != nil {
			s.Nudge(1)
		}
	case "left", "h":
		if s := panel.Focused(); s != nil {
			s.Nudge(-1)
		}
	case "e", "enter":
		if s := panel.Focused(); s != nil {
			a.editing, a.editBuf = true, s.Value()
		}
	case "a":
		ctl.RotateLeft(-rotateStep)
	case "d":
		ctl.RotateLeft(rotateStep)
	case "w":
		ctl.RotateUp(-rotateStep)
	case "s":
		ctl.RotateUp(rotateStep)
	case "+", "=":
		ctl.Dolly(1 / dollyFactor)
	case "-", "_":
		ctl.Dolly(dollyFactor)
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

// editKey edits the focused slider's text. The text is committed verbatim,
// so malformed input reaches the slider the way a typed field would.
func (a App) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if s := a.sys.Panel.Focused(); s != nil {
			s.Set(a.editBuf)
		}
		a.editing, a.editBuf = false, ""
	case tea.KeyEsc:
		a.editing, a.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(a.editBuf); len(r) > 0 {
			a.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyRunes:
		a.editBuf += string(msg.Runes)
	}
	return a, nil
}

func (a App) View() string {
	st := a.sys.State
	th := ThemeFor(st.Theme)
	sty := newStyles(th)

	canvas := a.raster.String()
	if canvas == "" {
		canvas = a.raster.Canvas().Render(string(th.Background))
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, a.viewPanel(sty))
	if a.showHelp {
		return sty.overlay.Render(helpText) + "\n" + main
	}
	return main
}

func (a App) viewPanel(sty styles) string {
	st := a.sys.State
	var s strings.Builder

	s.WriteString(sty.header.Render("ORRERY") + "\n")
	status := sty.value.Render("RUNNING")
	if st.Paused() {
		status = sty.paused.Render("PAUSED")
	}
	s.WriteString(status + "  " + sty.subtle.Render(fmt.Sprintf("frame %d", a.sys.Driver.Last().Seq)) + "\n")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		sty.button.Render(st.Pause.ButtonLabel()),
		sty.button.Render(st.Theme.ButtonLabel()),
	)
	s.WriteString(buttons + "\n")

	s.WriteString(sty.subtle.Render("SPEED (rad/frame)") + "\n")
	panel := a.sys.Panel
	for i, sl := range panel.Sliders() {
		focused := i == panel.Focus()
		val := sl.Value()
		if focused && a.editing {
			val = a.editBuf + "▏"
		}
		line := fmt.Sprintf("%s %s", SliderBar(sl.Fraction(), barWidth), val)
		if focused {
			s.WriteString(sty.active.Render("> "+fmt.Sprintf("%-8s", sl.Label)+line) + "\n")
		} else {
			s.WriteString("  " + sty.label.Render(sl.Label) + sty.value.Render(line) + "\n")
		}
	}

	s.WriteString(sty.subtle.Render(Separator(panelWidth-6)) + "\n")
	s.WriteString(sty.hint.Render("SP:Pause T:Theme ?:Help Q:Quit\nTab:Body ←→:Speed E:Edit\nWASD/drag:Orbit +-/wheel:Zoom"))
	return sty.panel.Width(panelWidth - 2).Render(s.String())
}

const helpText = `KEYBOARD SHORTCUTS

  Space      Pause / resume
  T          Toggle light / dark
  Tab        Next body slider
  Shift+Tab  Previous body slider
  ←/→ h/l    Nudge speed one step
  E / Enter  Type a speed (Enter saves, Esc cancels)
  W A S D    Orbit the camera
  + / -      Zoom in / out
  Mouse      Hover for details, drag to orbit, wheel to zoom
  ?          Toggle this help
  Q          Quit`

// Run starts the terminal program and blocks until the user quits.
func Run(sys *orrery.System, fps int) error {
	p := tea.NewProgram(NewApp(sys, fps), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
