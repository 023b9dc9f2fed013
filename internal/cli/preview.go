package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tagforge/tagcloud/internal/utils"
	"github.com/tagforge/tagcloud/pkg/cloud"
)

// PreviewTable renders the selection as a console table: one row per word
// with its count and the font size it gets in the page. Debugging aid; the
// HTML output is the real artifact.
func PreviewTable(sel cloud.Selection, scale cloud.FontScale) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Word", "Count", "Font"})

	for _, p := range sel.Words {
		size := scale.Size(sel.Min, sel.Max, p.Count)
		tw.AppendRow(table.Row{p.Word, utils.FormatWithCommas(p.Count), size})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
