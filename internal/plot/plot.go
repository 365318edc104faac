// Package plot renders the per-ticker chart artifact: close price with both
// SMAs on the primary axis, RSI on the secondary axis, and a vertical marker
// on the buy-signal date when one fired.
package plot

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"SignalScout/internal/model"
)

// Renderer draws and saves charts. OutputDir empty means the working
// directory. When Show is set the saved file is opened with the platform
// viewer; that is best effort and never fails the run.
type Renderer struct {
	OutputDir string
	Show      bool
}

// Render saves `{TICKER}_sma_plot.png` and returns its path. A failed file
// write propagates; only the optional interactive display is tolerated.
func (r *Renderer) Render(rows []model.IndicatorRow, ticker string, signalAt time.Time) (string, error) {
	if len(rows) < 2 {
		return "", fmt.Errorf("plot %s: need at least 2 rows, got %d", ticker, len(rows))
	}

	series := []chart.Series{closeSeries(rows)}
	if s, ok := indicatorSeries("SMA20", rows, func(row model.IndicatorRow) model.OptFloat { return row.SMA20 }, chart.ColorGreen); ok {
		series = append(series, s)
	}
	if s, ok := indicatorSeries("SMA50", rows, func(row model.IndicatorRow) model.OptFloat { return row.SMA50 }, chart.ColorRed); ok {
		series = append(series, s)
	}
	if s, ok := rsiSeries(rows); ok {
		series = append(series, s)
	}
	if !signalAt.IsZero() {
		series = append(series, signalMarker(rows, signalAt))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - Price, SMA, RSI", ticker),
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Price ($)",
		},
		YAxisSecondary: chart.YAxis{
			Name:  "RSI",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	path := filepath.Join(r.OutputDir, fmt.Sprintf("%s_sma_plot.png", ticker))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create plot file: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return "", fmt.Errorf("render plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write plot file: %w", err)
	}

	if r.Show {
		if err := openViewer(path); err != nil {
			log.Printf("[WARN] plot display failed (likely no GUI support): %v", err)
		}
	}
	return path, nil
}

func closeSeries(rows []model.IndicatorRow) chart.TimeSeries {
	xs := make([]time.Time, len(rows))
	ys := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = row.Time
		ys[i] = row.Close
	}
	return chart.TimeSeries{
		Name:    "Close Price",
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: chart.ColorBlue},
	}
}

// indicatorSeries collects only the defined portion of an indicator; warm-up
// rows never reach the chart. ok is false when fewer than two points remain.
func indicatorSeries(name string, rows []model.IndicatorRow, pick func(model.IndicatorRow) model.OptFloat, color drawing.Color) (chart.TimeSeries, bool) {
	var xs []time.Time
	var ys []float64
	for _, row := range rows {
		v := pick(row)
		if !v.Valid {
			continue
		}
		xs = append(xs, row.Time)
		ys = append(ys, v.Value)
	}
	if len(xs) < 2 {
		return chart.TimeSeries{}, false
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}, true
}

func rsiSeries(rows []model.IndicatorRow) (chart.TimeSeries, bool) {
	var xs []time.Time
	var ys []float64
	for _, row := range rows {
		if !row.RSI14.Valid {
			continue
		}
		xs = append(xs, row.Time)
		ys = append(ys, row.RSI14.Value)
	}
	if len(xs) < 2 {
		return chart.TimeSeries{}, false
	}
	return chart.TimeSeries{
		Name:    "RSI (14)",
		XValues: xs,
		YValues: ys,
		YAxis:   chart.YAxisSecondary,
		Style:   chart.Style{StrokeColor: chart.ColorAlternateGray},
	}, true
}

// signalMarker draws a vertical dotted line spanning the close-price range
// at the buy-signal date.
func signalMarker(rows []model.IndicatorRow, at time.Time) chart.TimeSeries {
	lo, hi := rows[0].Close, rows[0].Close
	for _, row := range rows[1:] {
		if row.Close < lo {
			lo = row.Close
		}
		if row.Close > hi {
			hi = row.Close
		}
	}
	return chart.TimeSeries{
		Name:    "Buy Signal",
		XValues: []time.Time{at, at},
		YValues: []float64{lo, hi},
		Style: chart.Style{
			StrokeColor:     chart.ColorGreen,
			StrokeDashArray: []float64{2.0, 4.0},
			StrokeWidth:     2.0,
		},
	}
}

func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
