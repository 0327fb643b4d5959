package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// result is an ordered list of named values printed by a command.
type result struct {
	rows [][]string
}

func (r *result) add(name string, value any) {
	r.rows = append(r.rows, []string{name, fmt.Sprint(value)})
}

func (r *result) render(out io.Writer, format string) error {
	switch format {
	case FormatPlain:
		for _, row := range r.rows {
			if _, err := fmt.Fprintf(out, "%s: %s\n", row[0], row[1]); err != nil {
				return err
			}
		}
	case FormatTable:
		table := tablewriter.NewWriter(out)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"FIELD", "VALUE"})
		table.AppendBulk(r.rows)
		table.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
