package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sphlab/internal/engine"
	"github.com/san-kum/sphlab/internal/metrics"
	"github.com/san-kum/sphlab/internal/parray"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	historyCapacity = 600
	stepsPerTick    = 5
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a simulator live and renders the particle field.
type Model struct {
	sim     *engine.Simulator
	rebuild func() (*engine.Simulator, error)
	density *metrics.MeanDensity

	dt          float64
	sceneName   string
	canvas      *Canvas
	densHistory []float64
	xMin, xMax  float64
	yMin, yMax  float64
	running     bool
	err         error
}

// NewModel wires a live view around a freshly built simulator. rebuild is
// invoked on reset so a run can start over from the same configuration.
func NewModel(sceneName string, dt float64, rebuild func() (*engine.Simulator, error)) (Model, error) {
	sim, err := rebuild()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		sim:         sim,
		rebuild:     rebuild,
		density:     metrics.NewMeanDensity(),
		dt:          dt,
		sceneName:   sceneName,
		canvas:      NewCanvas(canvasWidth, canvasHeight),
		densHistory: make([]float64, 0, historyCapacity),
		running:     true,
	}
	m.frameWindow()
	return m, nil
}

// frameWindow fixes the view window from the initial extent with headroom
// for the collapse to spread into.
func (m *Model) frameWindow() {
	x, _ := m.sim.Fluid().Field(parray.FieldX)
	y, _ := m.sim.Fluid().Field(parray.FieldY)

	xMin, xMax := x[0], x[0]
	yMax := y[0]
	for i := range x {
		if x[i] < xMin {
			xMin = x[i]
		}
		if x[i] > xMax {
			xMax = x[i]
		}
		if y[i] > yMax {
			yMax = y[i]
		}
	}
	spread := (xMax - xMin) * 2.5
	if spread == 0 {
		spread = 1
	}
	m.xMin, m.xMax = xMin-0.1*spread, xMin+spread
	m.yMin, m.yMax = -0.05*yMax, yMax*1.2
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.stepOnce()
		case "r":
			if sim, err := m.rebuild(); err == nil {
				m.sim = sim
				m.densHistory = m.densHistory[:0]
				m.err = nil
				m.frameWindow()
			}
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerTick; i++ {
				m.stepOnce()
				if m.err != nil {
					break
				}
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) stepOnce() {
	if err := m.sim.Step(m.dt, true); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.density.Observe(m.sim.Fluid(), m.sim.Time())
	rho, err := m.sim.Fluid().Field(parray.FieldRho)
	if err != nil {
		return
	}
	sum := 0.0
	for _, v := range rho {
		sum += v
	}
	if len(m.densHistory) >= historyCapacity {
		m.densHistory = m.densHistory[1:]
	}
	m.densHistory = append(m.densHistory, sum/float64(len(rho)))
}

func (m Model) View() string {
	m.canvas.Clear()
	x, _ := m.sim.Fluid().Field(parray.FieldX)
	y, _ := m.sim.Fluid().Field(parray.FieldY)
	m.canvas.PlotParticles(x, y, m.xMin, m.xMax, m.yMin, m.yMax)

	left := canvasStyle.Render(m.canvas.String())

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("sphlab / "+m.sceneName) + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%.4f s", m.sim.Time()))
	row("particles", fmt.Sprintf("%d", m.sim.Fluid().Len()))
	row("dt", fmt.Sprintf("%.1e", m.dt))
	row("mean density", fmt.Sprintf("%.2f", m.density.Value()))
	if m.running {
		row("status", "running")
	} else {
		row("status", "paused")
	}
	if m.err != nil {
		stats.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	if len(m.densHistory) > 2 {
		graph := asciigraph.Plot(m.densHistory,
			asciigraph.Height(6), asciigraph.Width(32),
			asciigraph.Caption("mean density"))
		stats.WriteString(graphStyle.Render(graph))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(stats.String()))
	help := helpStyle.Render("space pause · s step · r reset · q quit")
	return body + "\n" + help
}

// Run starts the live view and blocks until the user quits.
func Run(sceneName string, dt float64, rebuild func() (*engine.Simulator, error)) error {
	m, err := NewModel(sceneName, dt, rebuild)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
