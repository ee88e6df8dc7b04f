package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/dkbasic/mappings"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// renderSettings prints global values followed by a rhythm table.
func renderSettings(s *mappings.Settings, prov *mappings.Provenance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Debounce:     %d ms%s\n", s.Global.Debounce, defaultedSuffix(prov, "global.debounce"))
	fmt.Fprintf(&b, "Combo window: %d ms%s\n", s.Global.ComboWindow, defaultedSuffix(prov, "global.combo_window"))
	fmt.Fprintf(&b, "Microphone:   %s", yesNo(s.Global.Microphone))

	if !s.HasRhythms() {
		b.WriteString("\nNo freestyle rhythms")
		return b.String()
	}

	rows := make([][]string, 0, len(s.Freestyle))
	for _, r := range s.Freestyle {
		rows = append(rows, []string{
			string(rune(r.Character)),
			mappings.FormatBeats(r.Beats),
			strconv.Itoa(len(r.Beats)),
			r.Length().String(),
		})
	}
	b.WriteString("\n")
	b.WriteString(renderTable(
		[]string{"Key", "Beats", "Count", "Length"},
		rows,
		[]text.Align{text.AlignCenter, text.AlignLeft, text.AlignRight, text.AlignRight},
	))
	return b.String()
}

func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

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

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func defaultedSuffix(prov *mappings.Provenance, key string) string {
	if prov.Defaulted(key) {
		return " (default)"
	}
	return ""
}

func colorize(w io.Writer, color, line string) string {
	if !shouldColorize(w) {
		return line
	}
	return color + line + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
