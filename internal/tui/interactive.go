package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
	"github.com/Pavel-chemist/floating-objects/internal/config"
	"github.com/Pavel-chemist/floating-objects/internal/metrics"
	"github.com/Pavel-chemist/floating-objects/internal/world"
)

const (
	halfBlock   = "▀"
	statusLines = 2
	cursorStep  = 4.0
	historyLen  = 60
	sparkWidth  = 20
)

type model struct {
	world  *world.World
	cfg    *config.Config
	period time.Duration

	paused   bool
	dragging bool

	cursorX, cursorY float64

	backgrounds []string
	bgIndex     int

	momentum  float64
	history   []float64
	lastFrame time.Time
	fps       float64

	width  int
	height int
}

func newModel(w *world.World, cfg *config.Config) model {
	ww, wh := w.Size()
	backgrounds := append(canvas.PaletteNames(), config.BackgroundNoise)
	bgIndex := 0
	for i, name := range backgrounds {
		if name == cfg.Background {
			bgIndex = i
		}
	}
	return model{
		world:       w,
		cfg:         cfg,
		period:      cfg.TickPeriod(),
		cursorX:     float64(ww) / 2,
		cursorY:     float64(wh) / 2,
		backgrounds: backgrounds,
		bgIndex:     bgIndex,
		width:       80,
		height:      24,
	}
}

// Run opens the terminal view on w and blocks until the user quits.
func Run(w *world.World, cfg *config.Config) error {
	p := tea.NewProgram(newModel(w, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return tick(m.period) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastFrame = now
		if !m.paused {
			m.world.Step()
		}
		m.momentum = metrics.Momentum(m.world.Bodies())
		m.history = append(m.history, m.momentum)
		if len(m.history) > historyLen {
			m.history = m.history[len(m.history)-historyLen:]
		}
		return m, tick(m.period)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "a":
		m.world.AddRandomBodyAt(m.cursorX, m.cursorY)
	case "s":
		m.world.SelectBody(m.cursorX, m.cursorY)
	case "x", "delete":
		m.world.RemoveSelected()
	case "c":
		m.world.Clear()
	case "b":
		m.cycleBackground()
	case "up", "k":
		m.moveCursor(0, -cursorStep)
	case "down", "j":
		m.moveCursor(0, cursorStep)
	case "left", "h":
		m.moveCursor(-cursorStep, 0)
	case "right", "l":
		m.moveCursor(cursorStep, 0)
	}
	return m, nil
}

// moveCursor drags the selection along with the keyboard pointer.
func (m *model) moveCursor(dx, dy float64) {
	ww, wh := m.world.Size()
	m.cursorX = math.Max(0, math.Min(float64(ww-1), m.cursorX+dx))
	m.cursorY = math.Max(0, math.Min(float64(wh-1), m.cursorY+dy))
	m.world.DragSelectedTo(m.cursorX, m.cursorY)
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	x, y := m.toWorld(msg.X, msg.Y)
	ww, wh := m.world.Size()
	if x < 0 || y < 0 || x >= float64(ww) || y >= float64(wh) {
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.cursorX, m.cursorY = x, y
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.world.AddRandomBodyAt(x, y)
		case tea.MouseButtonRight:
			m.dragging = m.world.SelectBody(x, y)
		}
	case tea.MouseActionMotion:
		m.cursorX, m.cursorY = x, y
		if m.dragging {
			m.world.DragSelectedTo(x, y)
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

func (m *model) cycleBackground() {
	m.bgIndex = (m.bgIndex + 1) % len(m.backgrounds)
	ww, wh := m.world.Size()
	name := m.backgrounds[m.bgIndex]
	if name == config.BackgroundNoise {
		m.world.ReplaceBackground(canvas.Noise(ww, wh, canvas.DefaultNoise(m.cfg.Seed)))
		return
	}
	bg, err := canvas.Named(name, ww, wh)
	if err != nil {
		return
	}
	m.world.ReplaceBackground(bg)
}

func (m model) rows() int {
	return max(1, m.height-statusLines)
}

// scale is the number of world pixels per terminal column. Every cell
// shows two vertically stacked samples.
func (m model) scale() float64 {
	ww, wh := m.world.Size()
	return math.Max(float64(ww)/float64(max(1, m.width)), float64(wh)/float64(2*m.rows()))
}

func (m model) toWorld(col, row int) (float64, float64) {
	s := m.scale()
	return (float64(col) + 0.5) * s, (float64(2*row) + 1) * s
}

func (m model) View() string {
	frame := m.world.Render()
	s := m.scale()
	curCol := int(m.cursorX / s)
	curRow := int(m.cursorY / (2 * s))

	var b strings.Builder
	for row := 0; row < m.rows(); row++ {
		topY := int((float64(2*row) + 0.5) * s)
		botY := int((float64(2*row) + 1.5) * s)
		for col := 0; col < m.width; col++ {
			x := int((float64(col) + 0.5) * s)
			top, ok := frame.At(x, topY)
			if !ok {
				break
			}
			bottom, _ := frame.At(x, botY)
			style := lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom))
			if col == curCol && row == curRow {
				b.WriteString(style.Foreground(lipgloss.Color("#ffffff")).Render("+"))
				continue
			}
			b.WriteString(style.Render(halfBlock))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(keyHint.Render("a add  s select  arrows drag  x remove  c clear  b background  space pause  q quit"))
	return b.String()
}

func (m model) statusLine() string {
	parts := []string{
		titleStyle.Render(fmt.Sprintf("tick %d", m.world.Tick())),
		valueStyle.Render(fmt.Sprintf("bodies %d", m.world.Len())),
		valueStyle.Render(fmt.Sprintf("momentum %.1f", m.momentum)),
		sparkline(m.history, sparkWidth),
		subtle.Render(fmt.Sprintf("%.0f fps", m.fps)),
		subtle.Render(m.backgrounds[m.bgIndex]),
	}
	if sel, ok := m.world.Selected(); ok {
		parts = append(parts, selectedStyle.Render("selected "+sel.Name))
	}
	if m.paused {
		parts = append(parts, statusPaused.Render("paused"))
	}
	return strings.Join(parts, "  ")
}
