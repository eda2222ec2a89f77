package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/helioslab/heliosim/internal/particle"
	"github.com/helioslab/heliosim/internal/solar"
)

const (
	canvasWidth     = 78
	canvasHeight    = 26
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the bubbletea program driving the live view. It owns the frame
// loop: each tick it measures the wall-clock delta, feeds it to the particle
// system, and redraws. Reset and time-scale changes happen between frames,
// never inside one.
type Model struct {
	sim     *particle.System
	planets []solar.Planet
	scene   *Scene

	frameRate int
	running   bool
	lastTick  time.Time
	simTime   float64
	frames    int

	timeScale     float64
	activeHistory []float64
}

func NewModel(sim *particle.System, catalog *solar.System, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		sim:           sim,
		planets:       catalog.Planets(),
		scene:         NewScene(canvasWidth, canvasHeight),
		frameRate:     frameRate,
		running:       true,
		timeScale:     sim.TimeScale(),
		activeHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
			m.simTime = 0
			m.frames = 0
			m.activeHistory = m.activeHistory[:0]
		case "up", "k":
			m.timeScale *= 1.25
			m.sim.SetTimeScale(m.timeScale)
		case "down", "j":
			m.timeScale /= 1.25
			m.sim.SetTimeScale(m.timeScale)
		case "0":
			m.timeScale = 1.0
			m.sim.SetTimeScale(m.timeScale)
		case "x":
			m.scene.Camera.RotateX(0.1)
		case "X":
			m.scene.Camera.RotateX(-0.1)
		case "y":
			m.scene.Camera.RotateY(0.1)
		case "Y":
			m.scene.Camera.RotateY(-0.1)
		case "z":
			m.scene.Camera.RotateZ(0.1)
		case "Z":
			m.scene.Camera.RotateZ(-0.1)
		case "+", "=":
			m.scene.Camera.ZoomIn()
		case "-", "_":
			m.scene.Camera.ZoomOut()
		}
	case TickMsg:
		now := time.Time(msg)
		var dt float64
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now

		if m.running && dt > 0 {
			m.sim.Update(dt)
			m.simTime += dt * m.timeScale
			m.frames++

			m.activeHistory = append(m.activeHistory, float64(m.sim.Statistics().Active))
			if len(m.activeHistory) > historyCapacity {
				m.activeHistory = m.activeHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the 3D canvas beside the statistics sidebar.
func (m Model) View() string {
	m.scene.Render(m.sim.Positions(), m.sim.Colors(), m.planets)
	canvasView := canvasStyle.Render(m.scene.Canvas.String())

	st := m.sim.Statistics()

	var s strings.Builder
	s.WriteString(headerStyle.Render("HELIOSIM") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.activeHistory) > 1 {
		chart := asciigraph.Plot(m.activeHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Active particles"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Sim time", fmt.Sprintf("%.1f", m.simTime))
	row("Time scale", fmt.Sprintf("%.2fx", m.timeScale))
	row("Active", fmt.Sprintf("%d / %d", st.Active, st.Total))
	row("Removed", fmt.Sprintf("%d", st.Captured))
	row("Deflected", fmt.Sprintf("%d", st.Deflected))
	row("Mean speed", fmt.Sprintf("%.2f", st.MeanSpeed))

	s.WriteString("\nPOPULATION\n")
	row("Hydrogen", fmt.Sprintf("%d", st.Types.Hydrogen))
	row("Helium", fmt.Sprintf("%d", st.Types.Helium))
	row("Heavy ions", fmt.Sprintf("%d", st.Types.Ions))
	row("Dust", fmt.Sprintf("%d", st.Types.Dust))

	s.WriteString("\nENERGY\n")
	row("Low", fmt.Sprintf("%d", st.Energy.Low))
	row("Medium", fmt.Sprintf("%d", st.Energy.Medium))
	row("High", fmt.Sprintf("%d", st.Energy.High))

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n↑↓:Time scale 0:Real time\nXYZ:Rotate +/-:Zoom"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
