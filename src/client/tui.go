package client

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apimgr/weather-chart/src/models"
	"github.com/apimgr/weather-chart/src/renderer"
	"github.com/apimgr/weather-chart/src/utils"
)

// TUIOptions configures the interactive chart
type TUIOptions struct {
	// Input and Output default to the process terminal when nil
	Input  io.Reader
	Output io.Writer
	// Size used until the terminal reports its own
	Width   int
	Height  int
	NoColor bool
}

// chartModel is the bubbletea model for the forecast chart
type chartModel struct {
	forecast *models.Forecast
	width    int
	height   int
	noColor  bool
	quitting bool
}

// header + blank line + footer
const chromeRows = 3

// newChartModel creates a new chart model
func newChartModel(forecast *models.Forecast, opts TUIOptions) chartModel {
	m := chartModel{
		forecast: forecast,
		width:    opts.Width,
		height:   opts.Height,
		noColor:  opts.NoColor,
	}
	if m.width <= 0 {
		m.width = utils.DefaultWidth
	}
	if m.height <= 0 {
		m.height = utils.DefaultHeight
	}
	return m
}

// Init initializes the chart model
func (m chartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the chart. Only q quits; every other key is ignored.
func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if isQuitKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// isQuitKey reports whether the key event contains a plain q press.
// Fast typing can batch several runes into one event.
func isQuitKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste {
		return false
	}
	return slices.Contains(msg.Runes, 'q')
}

// View renders the header, chart and key help
func (m chartModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(renderer.Colorize(m.title(), renderer.ColorPurple, true, m.noColor))
	b.WriteString("\n\n")

	chart := renderer.NewBarChart(m.width, m.height-chromeRows, m.noColor)
	b.WriteString(chart.Render(m.forecast))
	b.WriteString("\n")

	b.WriteString(renderer.Colorize("q: quit", renderer.ColorComment, false, m.noColor))

	return b.String()
}

// title describes what is charted and where
func (m chartModel) title() string {
	title := "Daily maximum temperature"
	if m.forecast == nil {
		return title
	}
	if m.forecast.Unit != "" {
		title += " (" + m.forecast.Unit + ")"
	}
	title += " at " + m.forecast.Location.String()
	if m.forecast.Timezone != "" {
		title += " · " + m.forecast.Timezone
	}
	return title
}

// RunTUI shows the forecast chart in the alternate screen until q is pressed.
// The terminal is restored by bubbletea on every exit path, including panics.
func RunTUI(ctx context.Context, forecast *models.Forecast, opts TUIOptions) error {
	m := newChartModel(forecast, opts)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}
