package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/player"
)

const (
	width           = 100
	height          = 30
	panelWidth      = 42
	historyCapacity = 600
	speedStep       = 0.25
)

type TickMsg time.Time

// Options tune the interactive model. Zero values select defaults.
type Options struct {
	Theme     string
	FrameRate int
	BaseRate  float64
}

// Model drives an engine through a player and renders it as bars.
type Model struct {
	engine        *engine.Engine
	player        *player.Player
	sortedness    *metrics.Sortedness
	theme         Theme
	frameRate     int
	width, height int
	lastTick      time.Time
	dots          bool
	showHelp      bool
}

// NewModel wraps e in a paused player.
func NewModel(e *engine.Engine, opts Options) Model {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	m := Model{
		engine:     e,
		player:     player.New(e, opts.BaseRate),
		sortedness: metrics.NewSortedness(),
		theme:      GetTheme(opts.Theme),
		frameRate:  opts.FrameRate,
		width:      width,
		height:     height,
	}
	m.observe()
	return m
}

// Run starts the interactive program on the alternate screen.
func Run(e *engine.Engine, opts Options) error {
	_, err := tea.NewProgram(NewModel(e, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the player on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() && m.player.Tick(now.Sub(m.lastTick)) > 0 {
			m.observe()
		}
		m.lastTick = now
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.player.Toggle()
	case "n", "right":
		if m.player.StepOnce() {
			m.observe()
		}
	case "r":
		m.engine.Reset()
		m.player.Pause()
		m.restartHistory()
	case "s":
		m.engine.Shuffle()
		m.restartHistory()
	case "tab":
		m.selectAlgorithm(m.engine.AlgorithmType().Next())
	case "1", "2", "3", "4":
		m.selectAlgorithm(algorithms.Types()[key[0]-'1'])
	case "+", "=", "up":
		m.engine.SetSpeed(m.engine.Speed() + speedStep)
	case "-", "_", "down":
		m.engine.SetSpeed(m.engine.Speed() - speedStep)
	case "t":
		m.theme = NextTheme(m.theme.Name)
	case "v":
		m.dots = !m.dots
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) selectAlgorithm(t algorithms.Type) {
	if err := m.engine.SetAlgorithm(t); err != nil {
		return
	}
	m.engine.Reset()
	m.player.Pause()
	m.restartHistory()
}

func (m *Model) observe() {
	m.sortedness.Observe(m.engine.Sequence())
}

func (m *Model) restartHistory() {
	m.sortedness.Reset()
	m.observe()
}

// Player exposes the scheduler, mainly for status queries.
func (m Model) Player() *player.Player { return m.player }

func (m Model) Theme() Theme { return m.theme }

func (m Model) View() string {
	w := max(m.width-panelWidth-8, 10)
	h := max(m.height-8, 5)

	var plot string
	if m.dots {
		c := NewCanvas(w, h)
		c.Plot(m.engine.State().Values)
		plot = lipgloss.NewStyle().Foreground(m.theme.Normal).Render(c.String())
	} else {
		plot = m.renderBars(w, h)
	}

	title := headerStyle(m.theme).Render(strings.ToUpper(m.engine.AlgorithmName()))
	left := canvasStyle.Render(title + "\n" + plot + "\n\n" + m.legend())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(m.panel()))

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

type role int

const (
	roleNormal role = iota
	roleHighlight
	roleCompare
	roleCurrent
)

func barRole(idx int, cur algorithms.Cursors, highlighted map[int]bool) role {
	switch {
	case idx == cur.Current:
		return roleCurrent
	case idx == cur.Compare:
		return roleCompare
	case idx == cur.Partition || highlighted[idx]:
		return roleHighlight
	}
	return roleNormal
}

func (m Model) roleStyle(r role) lipgloss.Style {
	c := m.theme.Normal
	switch r {
	case roleCurrent:
		c = m.theme.Current
	case roleCompare:
		c = m.theme.Compare
	case roleHighlight:
		c = m.theme.Highlight
	}
	return lipgloss.NewStyle().Foreground(c)
}

// renderBars draws the sequence as w columns by h rows of bars scaled to the
// largest value.
func (m Model) renderBars(w, h int) string {
	snap := m.engine.State()
	n := len(snap.Values)
	if n == 0 {
		return strings.Repeat("\n", h-1)
	}

	highlighted := make(map[int]bool, len(snap.Highlights))
	for _, i := range snap.Highlights {
		highlighted[i] = true
	}
	maxVal := 1
	for _, v := range snap.Values {
		maxVal = max(maxVal, v)
	}

	cols := min(n, w)
	barW, gap := 1, 0
	if n < w {
		barW = w / n
	}
	if barW >= 3 {
		gap = 1
	}

	cur := m.engine.Cursors()
	heights := make([]int, cols)
	styles := make([]lipgloss.Style, cols)
	for x := range cols {
		idx := x
		if n > w {
			idx = x * n / w
		}
		v := snap.Values[idx]
		heights[x] = v * h / maxVal
		if v > 0 && heights[x] == 0 {
			heights[x] = 1
		}
		styles[x] = m.roleStyle(barRole(idx, cur, highlighted))
	}

	full := strings.Repeat("█", barW-gap) + strings.Repeat(" ", gap)
	empty := strings.Repeat(" ", barW)

	var b strings.Builder
	for row := h; row >= 1; row-- {
		for x := range cols {
			if heights[x] >= row {
				b.WriteString(styles[x].Render(full))
			} else {
				b.WriteString(empty)
			}
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) legend() string {
	swatch := func(c lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(c).Render("■") + " " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label)
	}
	return strings.Join([]string{
		swatch(m.theme.Current, "current/pivot"),
		swatch(m.theme.Compare, "compare"),
		swatch(m.theme.Highlight, "highlighted"),
		swatch(m.theme.Normal, "normal"),
	}, "  ")
}

func (m Model) panel() string {
	met := m.engine.Sequence().Metrics()
	info := m.engine.AlgorithmType().Info()
	cur := m.engine.Cursors()
	status := m.player.Status()

	row := func(label, value string) string {
		return labelStyle.Foreground(m.theme.Muted).Render(label) + valueStyle.Foreground(m.theme.Text).Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(headerStyle(m.theme).Render("METRICS") + "\n")
	s.WriteString(row("Algorithm", info.Name))
	s.WriteString(labelStyle.Render("Status") + statusStyle(status).Render(status.String()) + "\n\n")
	s.WriteString(row("Comparisons", humanize.Comma(int64(met.Comparisons))))
	s.WriteString(row("Swaps", humanize.Comma(int64(met.Swaps))))
	s.WriteString(row("Writes", humanize.Comma(int64(met.Writes))))
	s.WriteString(row("Steps", humanize.Comma(int64(m.engine.Steps()))))
	s.WriteString(row("Time", met.Elapsed.Round(time.Microsecond).String()))
	lo, hi := m.engine.SpeedBounds()
	s.WriteString(row("Size", fmt.Sprint(len(m.engine.Sequence().Values()))))
	s.WriteString(row("Speed", fmt.Sprintf("%.2fx [%g-%g]", m.engine.Speed(), lo, hi)))
	s.WriteString(row("Cursors", fmt.Sprintf("%d / %d / %d", cur.Current, cur.Compare, cur.Partition)))
	s.WriteString("\n")
	s.WriteString(row("Average", info.Average))
	s.WriteString(row("Worst", info.Worst))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Sortedness") + ProgressBar(m.sortedness.Value(), 20) + "\n")

	series := m.sortedness.Series()
	if len(series) > historyCapacity {
		series = series[len(series)-historyCapacity:]
	}
	if len(series) > 1 {
		chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("Sortedness"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-6))
	s.WriteString(helpStyle.Render("\nSP:Play N:Step R:Reset S:Shuffle\nTAB/1-4:Algo +/-:Speed T:Theme\nV:Dots ?:Help Q:Quit"))
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space/P  - Play/Pause               ║
║  N/Right  - Single step (paused)     ║
║  R        - Reset (pauses)           ║
║  S        - Shuffle                  ║
║  Tab      - Next algorithm           ║
║  1-4      - Quick/Merge/Bubble/Heap  ║
║  +/Up     - Speed up                 ║
║  -/Down   - Slow down                ║
║  T        - Cycle themes             ║
║  V        - Toggle bars/dots         ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
