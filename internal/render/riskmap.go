package render

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/couchcryptid/quake-risk-dashboard/internal/observability"
)

// LabelOffsetDegrees lifts the percentage label north of its marker so the
// pin icon does not cover it.
const LabelOffsetDegrees = 0.7

// TileLayer is the map base layer. Swapping it does not affect the markers.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	// Subdomains replace {s} in URL. Empty leaves Leaflet's default.
	Subdomains string `json:"subdomains,omitempty"`
}

// withoutUnusedSubdomains drops Subdomains when URL has no {s} placeholder.
func (t TileLayer) withoutUnusedSubdomains() TileLayer {
	if !strings.Contains(t.URL, "{s}") {
		t.Subdomains = ""
	}
	return t
}

// MapLabel is the probability text drawn above an island's marker.
type MapLabel struct {
	Island   string     `json:"island"`
	Position domain.Geo `json:"position"`
	Text     string     `json:"text"`
}

// MapMarker is a coloured pin at an island centroid with a detail popup.
type MapMarker struct {
	Island   string        `json:"island"`
	Position domain.Geo    `json:"position"`
	Bucket   domain.Bucket `json:"bucket"`
	Color    string        `json:"color"`
	// Popup is an HTML fragment; the island name is escaped.
	Popup string `json:"popup"`
}

// RiskMap is everything the browser needs to draw the map for one view.
// Framing is fixed and never fitted to the selection.
type RiskMap struct {
	Center  domain.Geo  `json:"center"`
	Zoom    int         `json:"zoom"`
	Tiles   TileLayer   `json:"tiles"`
	Labels  []MapLabel  `json:"labels"`
	Markers []MapMarker `json:"markers"`
}

// LegendEntry is one row of the map legend.
type LegendEntry struct {
	Bucket domain.Bucket
	Color  string
	Range  string
	Label  string
}

// Legend is the static bucket key shown bottom-left on the map.
type Legend struct {
	Title   string
	Entries []LegendEntry
}

// riskLegend is built once; it does not depend on data or selection.
var riskLegend = func() Legend {
	buckets := domain.Buckets()
	l := Legend{
		Title:   "Legenda Warna Ikon",
		Entries: make([]LegendEntry, len(buckets)),
	}
	for i, b := range buckets {
		l.Entries[i] = LegendEntry{Bucket: b, Color: b.Color(), Range: b.Range(), Label: b.Label()}
	}
	return l
}()

// RiskLegend returns the map legend.
func RiskLegend() Legend {
	return riskLegend
}

// MapRenderer turns a filtered view into map labels and markers.
type MapRenderer struct {
	tiles   TileLayer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewMapRenderer creates a MapRenderer drawing on the given base layer.
func NewMapRenderer(tiles TileLayer, logger *slog.Logger, metrics *observability.Metrics) *MapRenderer {
	return &MapRenderer{tiles: tiles.withoutUnusedSubdomains(), logger: logger, metrics: metrics}
}

// Render emits one label and one marker per row whose island has a centroid,
// in row order. Rows without a centroid are left off the map without any
// user-visible warning; they still appear in the table and charts.
func (m *MapRenderer) Render(rows []domain.StatRow) RiskMap {
	rm := RiskMap{
		Center:  domain.IndonesiaCenter,
		Zoom:    domain.IndonesiaZoom,
		Tiles:   m.tiles,
		Labels:  make([]MapLabel, 0, len(rows)),
		Markers: make([]MapMarker, 0, len(rows)),
	}

	for _, r := range rows {
		geo, ok := domain.LookupCentroid(r.Island)
		if !ok {
			m.logger.Debug("island has no centroid, not mapped", "island", r.Island)
			m.metrics.UnmappedIslands.Inc()
			continue
		}

		bucket := domain.Classify(r.ProbabilityModel)
		rm.Labels = append(rm.Labels, MapLabel{
			Island:   r.Island,
			Position: domain.Geo{Lat: geo.Lat + LabelOffsetDegrees, Lon: geo.Lon},
			Text:     FormatMapLabel(r.ProbabilityModel),
		})
		rm.Markers = append(rm.Markers, MapMarker{
			Island:   r.Island,
			Position: geo,
			Bucket:   bucket,
			Color:    bucket.Color(),
			Popup:    popupHTML(r),
		})
	}

	m.metrics.MarkersRendered.Observe(float64(len(rm.Markers)))
	return rm
}

// popupHTML builds the marker detail panel. Frequency is truncated, not
// rounded, unlike the summary table.
func popupHTML(r domain.StatRow) string {
	return fmt.Sprintf(
		"<b>%s</b><br>"+
			"Probabilitas Model: <b>%s</b><br>"+
			"Probabilitas Historis: %s<br>"+
			"Magnitudo Prediksi: %s<br>"+
			"Magnitudo Historis: %s<br>"+
			"Frekuensi Gempa: %s",
		template.HTMLEscapeString(r.Island),
		FormatPercent(r.ProbabilityModel),
		FormatPercent(r.ProbabilityHistorical),
		FormatMagnitude(r.AvgPredictedMagnitude),
		FormatMagnitude(r.AvgHistoricalMagnitude),
		FormatCountTruncated(r.Frequency),
	)
}
