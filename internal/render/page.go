package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
)

// PageTitle heads the dashboard.
const PageTitle = "Dashboard Risiko Gempa di Indonesia per Pulau"

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05 MST")
	},
}).ParseFS(templateFS, "templates/page.html"))

// IslandOption is one entry of the island selector.
type IslandOption struct {
	Name     string
	Selected bool
}

// Footer is the credit line and data provenance shown under the map.
type Footer struct {
	Credit   string
	DataPath string
	LoadedAt time.Time
}

// Page is a fully rendered dashboard, in display order: title, selector,
// summary table, probability charts, magnitude chart, map, footer.
type Page struct {
	Title   string
	Islands []IslandOption
	Table   SummaryTable
	Charts  Charts
	Map     RiskMap
	Legend  Legend
	Footer  Footer
}

// StatsView is the machine-readable form of one render pass.
type StatsView struct {
	Selected []string         `json:"selected"`
	Rows     []domain.StatRow `json:"rows"`
	Labels   []MapLabel       `json:"labels"`
	Markers  []MapMarker      `json:"markers"`
}

// IslandOptions marks which of the available islands are selected, keeping
// the available order.
func IslandOptions(available []string, sel domain.Selection) []IslandOption {
	opts := make([]IslandOption, len(available))
	for i, island := range available {
		opts[i] = IslandOption{Name: island, Selected: sel.Contains(island)}
	}
	return opts
}

// WritePage executes the page template into a buffer first so a template
// error never leaves a half-written response.
func WritePage(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
