package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart"

	"github.com/apimgr/weather-chart/src/models"
	"github.com/apimgr/weather-chart/src/renderer"
)

// PNG geometry
const (
	pngHeight      = 400
	pngMinWidth    = 640
	pngColumnWidth = 80
	pngBarWidth    = 40
	pngMargin      = 160
)

var errNoChartData = errors.New("forecast has no temperatures to chart")

// newForecastBarChart builds a go-chart bar chart of the days with data
func newForecastBarChart(forecast *models.Forecast) (chart.BarChart, error) {
	lo, hi, ok := forecast.Range()
	if !ok {
		return chart.BarChart{}, errNoChartData
	}

	var bars []chart.Value
	for _, day := range forecast.Days {
		if !day.Valid {
			continue
		}
		bars = append(bars, chart.Value{
			Label: renderer.ShortDate(day.Date),
			Value: day.TempMax,
		})
	}

	// Pad the range so the lowest bar is still visible
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}

	title := "Daily maximum temperature"
	if forecast.Unit != "" {
		title += " (" + forecast.Unit + ")"
	}

	return chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{Show: true},
		Width:      max(pngMinWidth, pngColumnWidth*len(bars)+pngMargin),
		Height:     pngHeight,
		BarWidth:   pngBarWidth,
		BarSpacing: pngColumnWidth - pngBarWidth,
		XAxis:      chart.Style{Show: true},
		YAxis: chart.YAxis{
			Style: chart.Style{Show: true},
			Range: &chart.ContinuousRange{
				Min: lo - pad,
				Max: hi + pad,
			},
		},
		Bars: bars,
	}, nil
}

// RenderPNG writes the forecast as a PNG bar chart
func RenderPNG(forecast *models.Forecast, w io.Writer) error {
	graph, err := newForecastBarChart(forecast)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Flush()
}

// ExportPNG writes the forecast chart to path
func ExportPNG(forecast *models.Forecast, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := RenderPNG(forecast, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
