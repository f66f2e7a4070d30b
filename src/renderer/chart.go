package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/apimgr/weather-chart/src/models"
)

// Chart geometry limits
const (
	minColumnWidth = 2
	maxColumnWidth = 8
	// axis line + date row + value row
	footerRows = 3
)

// NoDataMessage is shown when the forecast has no days
const NoDataMessage = "No weather data available"

// BarChart draws daily maximum temperatures as vertical bars
type BarChart struct {
	Width   int
	Height  int
	NoColor bool
}

// NewBarChart creates a chart that fits in width x height cells
func NewBarChart(width, height int, noColor bool) *BarChart {
	return &BarChart{
		Width:   width,
		Height:  height,
		NoColor: noColor,
	}
}

// Render returns the chart as newline-separated rows.
// Days that do not fit the width are dropped from the right; at least one day is always drawn.
func (c *BarChart) Render(forecast *models.Forecast) string {
	if forecast.Len() == 0 {
		return Colorize(NoDataMessage, ColorComment, false, c.NoColor)
	}

	// Labels for the full range are at least as wide as those of any subset
	hiLabel, loLabel := rangeLabels(forecast)
	gutter := max(len(hiLabel), len(loLabel)) + 2

	days := forecast.Days
	available := max(c.Width-gutter, minColumnWidth)
	colWidth := min(maxColumnWidth, available/len(days))
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
		days = days[:max(1, available/minColumnWidth)]
	}

	shown := &models.Forecast{Days: days}
	lo, hi, _ := shown.Range()
	hiLabel, loLabel = rangeLabels(shown)
	labelWidth := max(len(hiLabel), len(loLabel))
	gutter = labelWidth + 2

	barWidth := colWidth - 1

	plotHeight := max(1, c.Height-footerRows)
	heights := make([]int, len(days))
	positions := make([]float64, len(days))
	for i, day := range days {
		if !day.Valid {
			continue
		}
		heights[i], positions[i] = barHeight(day.TempMax, lo, hi, plotHeight)
	}

	rows := make([]string, 0, plotHeight+footerRows)
	for r := 0; r < plotHeight; r++ {
		var b strings.Builder

		switch r {
		case 0:
			b.WriteString(Colorize(fmt.Sprintf("%*s ┤", labelWidth, hiLabel), ColorComment, false, c.NoColor))
		case plotHeight - 1:
			b.WriteString(Colorize(fmt.Sprintf("%*s ┤", labelWidth, loLabel), ColorComment, false, c.NoColor))
		default:
			b.WriteString(Colorize(strings.Repeat(" ", labelWidth)+" │", ColorComment, false, c.NoColor))
		}

		for i := range days {
			if r >= plotHeight-heights[i] {
				bar := strings.Repeat("█", barWidth)
				b.WriteString(Colorize(bar, temperatureColor(positions[i]), false, c.NoColor))
				b.WriteString(" ")
			} else {
				b.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}

	axis := strings.Repeat(" ", labelWidth) + " └" + strings.Repeat("─", colWidth*len(days))
	rows = append(rows, Colorize(axis, ColorComment, false, c.NoColor))

	var dates, values strings.Builder
	dates.WriteString(strings.Repeat(" ", gutter))
	values.WriteString(strings.Repeat(" ", gutter))
	for _, day := range days {
		dates.WriteString(padCell(ShortDate(day.Date), colWidth))
		value := "n/a"
		if day.Valid {
			value = formatTemp(day.TempMax)
		}
		values.WriteString(padCell(value, colWidth))
	}
	rows = append(rows, Colorize(strings.TrimRight(dates.String(), " "), ColorForeground, false, c.NoColor))
	rows = append(rows, Colorize(strings.TrimRight(values.String(), " "), ColorYellow, false, c.NoColor))

	return strings.Join(rows, "\n")
}

// rangeLabels formats the highest and lowest temperatures of a forecast
func rangeLabels(forecast *models.Forecast) (hiLabel, loLabel string) {
	lo, hi, ok := forecast.Range()
	if !ok {
		return "n/a", "n/a"
	}
	return formatTemp(hi), formatTemp(lo)
}

// barHeight scales v into 1..plotHeight rows; equal lo and hi give full bars
func barHeight(v, lo, hi float64, plotHeight int) (int, float64) {
	if hi == lo {
		return plotHeight, 1
	}
	position := (v - lo) / (hi - lo)
	return 1 + int(math.Round(position*float64(plotHeight-1))), position
}

// ShortDate turns YYYY-MM-DD into MM-DD
func ShortDate(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}

func formatTemp(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// padCell left-aligns s in a cell of width w, keeping one space as separator
func padCell(s string, w int) string {
	limit := w - 1
	if limit < 1 {
		limit = 1
	}
	if len(s) > limit {
		s = s[:limit]
	}
	return s + strings.Repeat(" ", w-len(s))
}
