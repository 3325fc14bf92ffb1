package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/episurv/episurv/internal/model"
)

// Fixed dashboard geometry. The canvas matches the original dashboard's
// 10x8 inch figure at 100 dpi; a title band runs across the top and the
// four panels split the rest into a 2x2 grid.
const (
	// Width is the dashboard image width in pixels.
	Width = 1000

	// Height is the dashboard image height in pixels.
	Height = 800

	// titleBand is the height of the suptitle strip across the top.
	titleBand = 40

	// panelWidth is the width of each of the four panels.
	panelWidth = Width / 2

	// panelHeight is the height of each of the four panels.
	panelHeight = (Height - titleBand) / 2
)

// suptitle is the static dashboard title.
const suptitle = "Disease Surveillance Summary"

// Fixed panel colors, matching the established dashboard palette.
var (
	colorRecovered    = drawing.ColorFromHex("2ecc71")
	colorHospitalized = drawing.ColorFromHex("f39c12")
	colorDeaths       = drawing.ColorFromHex("e74c3c")
	colorHospRate     = drawing.ColorFromHex("3498db")
	colorFatalityRate = drawing.ColorFromHex("e74c3c")
)

// RenderDashboard renders the 2x2 metrics dashboard and writes it as a
// PNG to w. It does not fail on all-zero or defaulted metrics.
func RenderDashboard(m *model.Metrics, w io.Writer) error {
	canvas := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	drawCenteredText(canvas, suptitle, Width/2, titleBand/2+4, color.Black)

	// Top-left: outcome counts.
	outcomes, err := renderOutcomePanel(m)
	if err != nil {
		return fmt.Errorf("failed to render outcome panel: %w", err)
	}
	draw.Draw(canvas, image.Rect(0, titleBand, panelWidth, titleBand+panelHeight),
		outcomes, image.Point{}, draw.Src)

	// Top-right: rates.
	rates, err := renderRatePanel(m)
	if err != nil {
		return fmt.Errorf("failed to render rate panel: %w", err)
	}
	draw.Draw(canvas, image.Rect(panelWidth, titleBand, Width, titleBand+panelHeight),
		rates, image.Point{}, draw.Src)

	// Bottom-left: case counts as text.
	drawTextPanel(canvas, 0, titleBand+panelHeight, "Case Summary", []string{
		fmt.Sprintf("Total Cases: %d", int(m.TotalCases)),
		fmt.Sprintf("Hospitalized: %d", int(m.Hospitalized)),
		fmt.Sprintf("Deaths: %d", int(m.Deaths)),
	})

	// Bottom-right: rates as text with the static caption.
	drawTextPanel(canvas, panelWidth, titleBand+panelHeight, "Epidemic Metrics", []string{
		fmt.Sprintf("Hospitalization Rate: %.1f%%", m.HospitalizationRate),
		fmt.Sprintf("CFR: %.1f%%", m.CaseFatalityRate),
		"(Case Fatality Rate)",
	})

	return png.Encode(w, canvas)
}

// renderOutcomePanel renders the outcome-count bar chart. The recovered
// count is derived from the totals, never read from the report.
func renderOutcomePanel(m *model.Metrics) (image.Image, error) {
	bars := []chart.Value{
		{Label: "Recovered", Value: m.Recovered(), Style: barStyle(colorRecovered)},
		{Label: "Hospitalized", Value: m.Hospitalized, Style: barStyle(colorHospitalized)},
		{Label: "Deaths", Value: m.Deaths, Style: barStyle(colorDeaths)},
	}

	maxCount := m.Recovered()
	if m.Hospitalized > maxCount {
		maxCount = m.Hospitalized
	}
	if m.Deaths > maxCount {
		maxCount = m.Deaths
	}
	// A zero-span axis would be rejected by the renderer.
	if maxCount <= 0 {
		maxCount = 1
	}

	return renderBarPanel("Outcomes by Case Status", bars, 0, maxCount*1.05)
}

// renderRatePanel renders the two-rate bar chart. The y-axis is scaled
// to 120% of the larger rate, or fixed 0-100 when both rates are zero.
func renderRatePanel(m *model.Metrics) (image.Image, error) {
	bars := []chart.Value{
		{Label: "Hosp. Rate", Value: m.HospitalizationRate, Style: barStyle(colorHospRate)},
		{Label: "Fatality Rate", Value: m.CaseFatalityRate, Style: barStyle(colorFatalityRate)},
	}

	maxRate := m.HospitalizationRate
	if m.CaseFatalityRate > maxRate {
		maxRate = m.CaseFatalityRate
	}

	yMax := 100.0
	if maxRate > 0 {
		yMax = maxRate * 1.2
	}

	return renderBarPanel("Key Epidemiological Rates", bars, 0, yMax)
}

// renderBarPanel renders one bar chart at panel size and decodes it back
// into an image for composition onto the dashboard canvas.
func renderBarPanel(title string, bars []chart.Value, yMin, yMax float64) (image.Image, error) {
	bc := chart.BarChart{
		Title:  title,
		Width:  panelWidth,
		Height: panelHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12},
		},
		BarWidth: 80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// barStyle returns the fill/stroke style for one bar.
func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 0,
	}
}

// drawTextPanel draws a titled text panel at the given origin, with the
// lines centered horizontally and spread vertically like the original
// dashboard's text axes.
func drawTextPanel(dst *image.RGBA, x, y int, title string, lines []string) {
	cx := x + panelWidth/2

	drawCenteredText(dst, title, cx, y+30, color.Black)

	// Lines sit at 30/50/70% of the panel height below the title.
	step := (panelHeight - 60) / (len(lines) + 1)
	for i, line := range lines {
		drawCenteredText(dst, line, cx, y+60+(i+1)*step, color.Black)
	}
}

// drawCenteredText draws text centered on (cx, y) using the fixed-size
// 7x13 face. The face keeps the renderer dependency-free of TTF assets.
func drawCenteredText(dst *image.RGBA, text string, cx, y int, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	w := d.MeasureString(text).Ceil()
	d.Dot = fixed.Point26_6{X: fixed.I(cx - w/2), Y: fixed.I(y)}
	d.DrawString(text)
}
