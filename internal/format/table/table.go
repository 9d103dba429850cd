package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Ellipsis marks a truncated cell.
const Ellipsis = "…"

const gap = 2

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth is Format with an upper bound on the row width. When the rows
// do not fit, the first column is truncated with an ellipsis. A maxWidth of
// zero means unbounded.
func FormatWidth(rows [][]string, alignments []Alignment, maxWidth int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	if maxWidth > 0 {
		if excess := totalWidth(widths) - maxWidth; excess > 0 {
			widths[0] -= excess
			if widths[0] < 1 {
				widths[0] = 1
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := range widths {
			if c > 0 {
				writeSpaces(&b, gap)
			}
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if cellWidth(cell) > widths[c] {
				cell = ansi.Truncate(cell, widths[c], Ellipsis)
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

// Width reports the width Format would give the rows.
func Width(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return totalWidth(columnWidths(rows))
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func totalWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := gap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
