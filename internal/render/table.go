package render

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/patrickprogramme/lyricruby/pkg/model"
)

// lyricsTable rend les lignes dans un tableau ; les colonnes lecture et romaji
// n'apparaissent que si au moins une ligne les renseigne.
func lyricsTable(lines []model.Line, color bool) string {
	withReading, withRomaji := false, false
	for _, l := range lines {
		withReading = withReading || l.Reading != ""
		withRomaji = withRomaji || l.Romaji != ""
	}

	headers := []string{"#", "Début", "Fin", "Paroles"}
	if withReading {
		headers = append(headers, "Lecture")
	}
	if withRomaji {
		headers = append(headers, "Romaji")
	}

	rows := make([][]string, 0, len(lines))
	for i, l := range lines {
		row := []string{
			strconv.Itoa(i + 1),
			l.Start.TimestampHHMMSS(),
			l.End.TimestampHHMMSS(),
			l.Text,
		}
		if withReading {
			row = append(row, l.Reading)
		}
		if withRomaji {
			row = append(row, l.Romaji)
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, []int{1}, color)
}

// renderTable : style arrondi, colonnes alignées à gauche sauf rightCols (numéros 1-based).
func renderTable(headers []string, rows [][]string, rightCols []int, color bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if color {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	right := make(map[int]bool, len(rightCols))
	for _, n := range rightCols {
		right[n] = true
	}
	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 1; i <= columns; i++ {
		align := text.AlignLeft
		if right[i] {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
