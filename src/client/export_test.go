package client

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apimgr/weather-chart/src/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPNG(testForecast(), &buf); err != nil {
		t.Fatalf("RenderPNG() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("Expected PNG output")
	}
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast.png")
	if err := ExportPNG(testForecast(), path); err != nil {
		t.Fatalf("ExportPNG() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read PNG: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Expected PNG file")
	}
}

func TestForecastBarChart(t *testing.T) {
	f := testForecast()
	f.Days = append(f.Days, models.ForecastDay{Date: "2024-01-03"})

	graph, err := newForecastBarChart(f)
	if err != nil {
		t.Fatalf("newForecastBarChart() failed: %v", err)
	}

	if len(graph.Bars) != 2 {
		t.Fatalf("Expected days without data to be skipped, got %d bars", len(graph.Bars))
	}
	if graph.Bars[0].Label != "01-01" || graph.Bars[1].Value != 45.5 {
		t.Errorf("Unexpected bars: %+v", graph.Bars)
	}
	if graph.Title != "Daily maximum temperature (°F)" {
		t.Errorf("Unexpected title %q", graph.Title)
	}
	if graph.Width != pngMinWidth {
		t.Errorf("Expected width %d, got %d", pngMinWidth, graph.Width)
	}
}

func TestRenderPNGNoData(t *testing.T) {
	f := &models.Forecast{Days: []models.ForecastDay{{Date: "2024-01-01"}}}

	var buf bytes.Buffer
	if err := RenderPNG(f, &buf); !errors.Is(err, errNoChartData) {
		t.Errorf("Expected errNoChartData, got %v", err)
	}
}
