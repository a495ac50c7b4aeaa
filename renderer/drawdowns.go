package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tearsheet"
	md "github.com/nao1215/markdown"
)

// DrawdownsMarkdown renders a drawdown episode table as a standalone
// markdown document.
func DrawdownsMarkdown(title string, episodes []tearsheet.Drawdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(episodes) == 0 {
		doc.PlainText("No drawdowns in this range.")
		return doc.String()
	}
	doc.Table(drawdownTable(episodes))
	return doc.String()
}

func drawdownTable(episodes []tearsheet.Drawdown) md.TableSet {
	set := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight,
		},
		Header: []string{"Started", "Valley", "Recovered", "Days", "Depth"},
	}
	for _, d := range episodes {
		end := d.End.String()
		if d.Active {
			end = "ongoing"
		}
		set.Rows = append(set.Rows, []string{
			d.Start.String(),
			d.Valley.String(),
			end,
			fmt.Sprintf("%d", d.Days),
			tearsheet.AsPercent(d.Depth).String(),
		})
	}
	return set
}
