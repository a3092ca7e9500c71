package cmd

import (
	"strconv"

	"midikara/internal/worker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column. Numeric columns are right-aligned.
type column struct {
	title   string
	numeric bool
}

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if c.numeric {
			configs[i].Align = text.AlignRight
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// renderSummaryTable lists the per-channel outcome of a render run.
func renderSummaryTable(summary *worker.Summary) string {
	rows := make([][]string, 0, len(summary.Channels))
	for _, ch := range summary.Channels {
		status := "ok"
		switch {
		case ch.Err != nil:
			status = ch.Err.Error()
		case !ch.Mismatch.OK():
			status = ch.Mismatch.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(ch.Channel),
			ch.Style,
			displayPath(ch.Dialogue),
			strconv.Itoa(ch.Syllables),
			strconv.Itoa(ch.Lines),
			status,
		})
	}
	return renderTable([]column{
		{"Channel", true},
		{"Style", false},
		{"Dialogue", false},
		{"Syllables", true},
		{"Lines", true},
		{"Status", false},
	}, rows)
}
