package render

import (
	"bytes"
	"cmp"
	"fmt"
	"html/template"
	"image/color"
	"slices"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Charts holds the three comparison charts as inline SVG documents.
type Charts struct {
	ModelProbability      template.HTML
	HistoricalProbability template.HTML
	Magnitude             template.HTML
}

// ChartRenderer produces the chart set for a filtered view.
type ChartRenderer interface {
	RenderCharts(rows []domain.StatRow) (Charts, error)
}

const (
	probabilityChartWidth  = 5 * vg.Inch
	probabilityChartHeight = 3.5 * vg.Inch
	magnitudeChartWidth    = 10 * vg.Inch
	magnitudeChartHeight   = 4 * vg.Inch
)

var (
	probabilityBarWidth = vg.Points(14)
	magnitudeBarWidth   = vg.Points(16)

	// Default categorical pair for grouped bars.
	predictedColor  = color.RGBA{R: 0x63, G: 0x6e, B: 0xfa, A: 0xff}
	historicalColor = color.RGBA{R: 0xef, G: 0x55, B: 0x3b, A: 0xff}
)

// probabilitySeries describes one horizontal probability chart.
type probabilitySeries struct {
	title   string
	axis    string
	palette string // ColorBrewer sequential palette name
	value   func(domain.StatRow) float64
}

var (
	modelSeries = probabilitySeries{
		title:   "Probabilitas Model",
		axis:    domain.ColProbabilityModel,
		palette: "Reds",
		value:   func(r domain.StatRow) float64 { return r.ProbabilityModel },
	}
	historicalSeries = probabilitySeries{
		title:   "Probabilitas Historis",
		axis:    domain.ColProbabilityHistorical,
		palette: "Blues",
		value:   func(r domain.StatRow) float64 { return r.ProbabilityHistorical },
	}
)

// PlotRenderer draws charts with gonum/plot.
type PlotRenderer struct{}

// RenderCharts draws all three charts. An empty view yields three plots with
// axes and titles only.
func (PlotRenderer) RenderCharts(rows []domain.StatRow) (Charts, error) {
	model, err := probabilityChart(rows, modelSeries)
	if err != nil {
		return Charts{}, fmt.Errorf("model probability chart: %w", err)
	}
	historical, err := probabilityChart(rows, historicalSeries)
	if err != nil {
		return Charts{}, fmt.Errorf("historical probability chart: %w", err)
	}
	magnitude, err := magnitudeChart(rows)
	if err != nil {
		return Charts{}, fmt.Errorf("magnitude chart: %w", err)
	}
	return Charts{
		ModelProbability:      model,
		HistoricalProbability: historical,
		Magnitude:             magnitude,
	}, nil
}

// probabilityChart draws one horizontal bar per row, sorted ascending by value
// so the largest bar sits at the top. Bar shade scales with the value.
func probabilityChart(rows []domain.StatRow, series probabilitySeries) (template.HTML, error) {
	sorted := sortedBy(rows, series.value)

	shades, err := sequentialShades(series.palette)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = series.title
	p.X.Label.Text = series.axis
	p.Y.Label.Text = domain.ColIsland

	lo, hi := valueRange(sorted, series.value)
	names := make([]string, len(sorted))
	for i, r := range sorted {
		v := series.value(r)
		bar, err := plotter.NewBarChart(plotter.Values{v}, probabilityBarWidth)
		if err != nil {
			return "", fmt.Errorf("bar %q: %w", r.Island, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = shade(shades, lo, hi, v)
		bar.LineStyle.Width = 0
		p.Add(bar)
		names[i] = r.Island
	}
	if len(names) > 0 {
		p.NominalY(names...)
	}

	return encodeSVG(p, probabilityChartWidth, probabilityChartHeight)
}

// magnitudeChart draws one group per island with the predicted and
// historical average magnitudes side by side, each bar labelled with its
// value. Groups keep the filtered view's order.
func magnitudeChart(rows []domain.StatRow) (template.HTML, error) {
	p := plot.New()
	p.Title.Text = "Rata-Rata Magnitudo: Prediksi vs Historis"
	p.X.Label.Text = domain.ColIsland
	p.Y.Label.Text = "Magnitudo"

	if len(rows) == 0 {
		return encodeSVG(p, magnitudeChartWidth, magnitudeChartHeight)
	}

	predicted := make(plotter.Values, len(rows))
	historical := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		predicted[i] = r.AvgPredictedMagnitude
		historical[i] = r.AvgHistoricalMagnitude
		names[i] = r.Island
	}

	groups := []struct {
		name   string
		values plotter.Values
		color  color.Color
		offset vg.Length
	}{
		{domain.ColAvgPredictedMagnitude, predicted, predictedColor, -magnitudeBarWidth / 2},
		{domain.ColAvgHistoricalMagnitude, historical, historicalColor, magnitudeBarWidth / 2},
	}
	for _, g := range groups {
		bars, err := plotter.NewBarChart(g.values, magnitudeBarWidth)
		if err != nil {
			return "", fmt.Errorf("%s bars: %w", g.name, err)
		}
		bars.Color = g.color
		bars.Offset = g.offset
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.Legend.Add(g.name, bars)

		labels, err := valueLabels(g.values, g.offset)
		if err != nil {
			return "", fmt.Errorf("%s labels: %w", g.name, err)
		}
		p.Add(labels)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	return encodeSVG(p, magnitudeChartWidth, magnitudeChartHeight)
}

// valueLabels places a centred text label just above each bar.
func valueLabels(values plotter.Values, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = FormatMagnitude(v)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(2)}
	return labels, nil
}

// sequentialShades returns a ColorBrewer sequential palette, light to dark.
// The two lightest shades are dropped; they vanish on a white background.
func sequentialShades(name string) ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeSequential, name, 9)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", name, err)
	}
	return pal.Colors()[2:], nil
}

// shade picks the palette entry for v on the lo..hi scale. A degenerate scale
// (one row, or all values equal) uses the darkest shade.
func shade(shades []color.Color, lo, hi, v float64) color.Color {
	if hi <= lo {
		return shades[len(shades)-1]
	}
	t := (v - lo) / (hi - lo)
	i := int(t*float64(len(shades)-1) + 0.5)
	return shades[min(max(i, 0), len(shades)-1)]
}

func valueRange(rows []domain.StatRow, value func(domain.StatRow) float64) (lo, hi float64) {
	for i, r := range rows {
		v := value(r)
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

func sortedBy(rows []domain.StatRow, value func(domain.StatRow) float64) []domain.StatRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.StatRow) int {
		return cmp.Compare(value(a), value(b))
	})
	return sorted
}

// encodeSVG renders the plot and strips the XML prolog so the document can
// be inlined in HTML.
func encodeSVG(p *plot.Plot, w, h vg.Length) (template.HTML, error) {
	wt, err := p.WriterTo(w, h, "svg")
	if err != nil {
		return "", fmt.Errorf("encode svg: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("write svg: %w", err)
	}

	b := buf.Bytes()
	if i := bytes.Index(b, []byte("<svg")); i > 0 {
		b = b[i:]
	}
	return template.HTML(b), nil //nolint:gosec // SVG generated by gonum/plot; text nodes are XML-escaped
}
