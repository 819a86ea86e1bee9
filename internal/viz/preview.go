package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fractanim/internal/anim"
	"github.com/san-kum/fractanim/internal/config"
	"github.com/san-kum/fractanim/internal/fractal"
	"github.com/san-kum/fractanim/internal/shade"
)

const (
	defaultCols = 80
	defaultRows = 24
	headerLines = 3
	halfBlock   = "▀"
)

type TickMsg time.Time

// Model is the Bubble Tea model of the terminal preview.
type Model struct {
	grid   *fractal.Grid
	driver *anim.Driver
	ctrl   *anim.Controller
	styles cellStyles
	header lipgloss.Style

	cols, rows int
	frame      time.Duration
	last       time.Time
}

func NewModel(cfg *config.Config, grid *fractal.Grid) (Model, error) {
	key, err := cfg.Key()
	if err != nil {
		return Model{}, err
	}
	return Model{
		grid:   grid,
		driver: anim.NewDriver(cfg.AnimationTime, grid.MaxIters()),
		ctrl:   anim.NewController(cfg.Mode(), key),
		styles: make(cellStyles),
		header: headerStyle.Foreground(lipgloss.Color(cfg.TextColor)),
		cols:   defaultCols,
		rows:   defaultRows - headerLines,
		frame:  time.Second / time.Duration(cfg.FPS),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.ctrl.Handle(keyEvent(msg))
		if m.ctrl.Closed {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - headerLines
		if m.rows < 1 {
			m.rows = 1
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.driver.Advance(now.Sub(m.last).Seconds())
		}
		m.last = now
		return m, m.tick()
	}
	return m, nil
}

func keyEvent(msg tea.KeyMsg) anim.Event {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return anim.Close{}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return anim.KeyPress{Key: msg.Runes[0]}
	}
	return nil
}

// side is the edge length, in samples, of the square image that fits the
// terminal: one sample per column, two per row.
func (m Model) side() int {
	side := m.cols
	if 2*m.rows < side {
		side = 2 * m.rows
	}
	if side < 2 {
		side = 2
	}
	return side &^ 1
}

// level shades sample (y, x) of a side x side downsampling of the grid.
func (m Model) level(y, x, side, checkIters, norm int) uint8 {
	row := y * m.grid.Height() / side
	col := x * m.grid.Width() / side
	v, ok := shade.Intensity(m.grid.At(row, col), checkIters, norm)
	if !ok {
		return 0
	}
	return v
}

func (m Model) View() string {
	var b strings.Builder

	lines := strings.SplitN(shade.Overlay(m.ctrl.ToggleKey, m.driver.Elapsed()), "\n", 2)
	b.WriteString(m.header.Render(lines[0]))
	b.WriteString("\n")
	if len(lines) > 1 {
		b.WriteString(m.header.Render(lines[1]))
	}
	b.WriteString("  ")
	b.WriteString(hintStyle.Render(fmt.Sprintf("mode: %s  threshold: %d  [q] quit", m.ctrl.Mode, m.driver.CheckIters())))
	b.WriteString("\n\n")

	side := m.side()
	check := m.driver.CheckIters()
	norm := shade.Norm(m.ctrl.Mode, m.grid.MaxIters(), check)
	for y := 0; y < side; y += 2 {
		for x := 0; x < side; x++ {
			upper := m.level(y, x, side, check, norm)
			lower := m.level(y+1, x, side, check, norm)
			b.WriteString(m.styles.get(upper, lower).Render(halfBlock))
		}
		if y+2 < side {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Run computes the escape grid and blocks until the preview is closed.
func Run(cfg *config.Config) error {
	grid, err := fractal.Compute(fractal.DefaultPlane(), fractal.MaxCheckIters)
	if err != nil {
		return fmt.Errorf("compute grid: %w", err)
	}
	m, err := NewModel(cfg, grid)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
