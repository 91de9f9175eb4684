package tablemend

import "strings"

// isValidTable reports whether the merged rows of a block already form
// a grammatically valid table: at least two pipe-bearing rows, the
// second a separator row, and every row with the same cell count as
// the first. Valid blocks are emitted from their original unmerged
// lines, so merging never rewrites a table that was already correct.
func isValidTable(merged []string) bool {
	var rows [][]string
	for _, line := range merged {
		if !strings.Contains(line, "|") {
			continue
		}
		cells, _ := parseRow(line)
		rows = append(rows, cells)
	}
	if len(rows) < 2 {
		return false
	}
	if !isSeparatorRow(rows[1]) {
		return false
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return false
		}
	}
	return true
}
