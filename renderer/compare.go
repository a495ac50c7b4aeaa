package renderer

import (
	"bytes"

	"github.com/etnz/tearsheet"
	md "github.com/nao1215/markdown"
)

// CompareMarkdown renders a strategy-versus-benchmark comparison table
// as a standalone markdown document.
func CompareMarkdown(title string, rows []tearsheet.ComparisonRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No overlapping periods to compare.")
		return doc.String()
	}
	doc.Table(compareTable(rows))
	return doc.String()
}

func compareTable(rows []tearsheet.ComparisonRow) md.TableSet {
	set := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignCenter,
		},
		Header: []string{"Period", "Strategy", "Benchmark", "Won"},
	}
	for _, r := range rows {
		won := ""
		if r.Won {
			won = "✓"
		}
		set.Rows = append(set.Rows, []string{
			r.Label,
			r.Returns.SignedString(),
			r.Benchmark.SignedString(),
			won,
		})
	}
	return set
}
