package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	labelWidth = 6
	cellWidth  = 9
)

// WriteTable draws m as a boxed terminal table. With colorize off no escape
// codes are written, whatever the terminal supports.
func WriteTable(w io.Writer, m Model, colorize bool) error {
	header := color.New(color.FgCyan, color.Bold)
	avg := color.New(color.FgYellow, color.Bold)
	label := color.New(color.FgGreen)
	muted := color.New(color.FgMagenta)
	for _, c := range []*color.Color{header, avg, label, muted} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if m.Empty {
		msg := "No result"
		if m.Reason != "" {
			msg += ": " + m.Reason
		}
		_, err := fmt.Fprintln(w, muted.Sprint(msg))
		return err
	}

	seg := strings.Repeat("─", labelWidth+2)
	cell := strings.Repeat("─", cellWidth+2)
	rule := func(left, mid, right string) string {
		parts := []string{seg}
		for range m.Columns {
			parts = append(parts, cell)
		}
		return "   " + left + strings.Join(parts, mid) + right
	}

	var b strings.Builder
	fmt.Fprintf(&b, "   %s %s kg × %d\n\n", header.Sprint("Input:"), m.Weight, m.Reps)
	fmt.Fprintln(&b, rule("┌", "┬", "┐"))

	fmt.Fprintf(&b, "   │ %s │", header.Sprintf("%-*s", labelWidth, "RM"))
	for _, col := range m.Columns {
		fmt.Fprintf(&b, " %s │", header.Sprintf("%*s", cellWidth, col.Label))
	}
	b.WriteString("\n")
	fmt.Fprintln(&b, rule("├", "┼", "┤"))

	for _, row := range m.Rows {
		fmt.Fprintf(&b, "   │ %s │", label.Sprintf("%-*s", labelWidth, row.Label))
		for i, v := range row.Cells {
			s := fmt.Sprintf("%*d", cellWidth, v)
			if i == 0 {
				s = avg.Sprint(s)
			}
			fmt.Fprintf(&b, " %s │", s)
		}
		b.WriteString("\n")
	}
	fmt.Fprintln(&b, rule("└", "┴", "┘"))

	_, err := io.WriteString(w, b.String())
	return err
}
