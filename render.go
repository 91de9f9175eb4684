package tablemend

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// rebuildRow renders cells into a row using the block's pipe style.
// When widths is non-nil each cell is padded to its column's display
// width.
func rebuildRow(cells []string, style PipeStyle, widths []int) string {
	if len(cells) == 0 {
		return ""
	}
	parts := cells
	if widths != nil {
		parts = make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				parts[i] = padCell(cell, widths[i])
			} else {
				parts[i] = cell
			}
		}
	}
	row := strings.Join(parts, " | ")
	if style.Lead {
		row = "| " + row
	}
	if style.Trail {
		row += " |"
	}
	return row
}

// separatorCells synthesizes a canonical separator row. With widths,
// each cell is stretched to its column width; otherwise every cell is
// the minimal "---".
func separatorCells(cols int, widths []int) []string {
	cells := make([]string, cols)
	for i := range cells {
		if widths != nil && i < len(widths) {
			cells[i] = strings.Repeat("-", widths[i])
		} else {
			cells[i] = "---"
		}
	}
	return cells
}

// columnWidths computes per-column display widths over rows, with a
// minimum of 3 so a separator cell always fits.
func columnWidths(rows [][]string, cols int) []int {
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if i >= cols {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	return widths
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
