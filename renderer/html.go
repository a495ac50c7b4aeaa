package renderer

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/etnz/tearsheet"
)

//go:embed templates/*.html
var templates embed.FS

// Chart is a rendered PNG ready for inline embedding.
type Chart struct {
	Title string
	PNG   []byte
}

// DataURI returns the chart as a base64 data URI usable in an img tag.
func (c Chart) DataURI() template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(c.PNG))
}

// htmlPage is the root object handed to the tear sheet template.
type htmlPage struct {
	TearSheet *tearsheet.TearSheet
	Charts    []Chart
	Sections  []htmlSection
}

type htmlSection struct {
	Title string
	Rows  [][]string
}

// TearSheetHTML renders the tear sheet as a single self-contained HTML
// page. Charts are optional and embedded inline when given.
func TearSheetHTML(ts *tearsheet.TearSheet, charts []Chart) (string, error) {
	tmpl, err := template.New("tearsheet.html").Funcs(template.FuncMap{
		"fmt2":    tearsheet.Fmt2,
		"percent": func(ratio float64) string { return tearsheet.AsPercent(ratio).String() },
	}).ParseFS(templates, "templates/tearsheet.html")
	if err != nil {
		return "", fmt.Errorf("parsing tear sheet template: %w", err)
	}

	page := htmlPage{
		TearSheet: ts,
		Charts:    charts,
		Sections: []htmlSection{
			{Title: "Performance", Rows: sectionRows(ts, performanceRows)},
			{Title: "Risk", Rows: sectionRows(ts, riskRows)},
			{Title: "Win / Loss", Rows: sectionRows(ts, winLossRows)},
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("rendering tear sheet template: %w", err)
	}
	return buf.String(), nil
}

func sectionRows(ts *tearsheet.TearSheet, rows []metricRow) [][]string {
	var out [][]string
	for _, r := range rows {
		row := []string{r.label, r.value(&ts.Strategy)}
		if ts.Benchmark != nil {
			row = append(row, r.value(&ts.Benchmark.Metrics))
		}
		out = append(out, row)
	}
	return out
}
