package tablemend

import (
	"regexp"
	"strings"
)

// PipeStyle records whether a row begins and ends with a literal pipe.
// It is extracted once per block and applied to every rebuilt row.
type PipeStyle struct {
	Lead  bool
	Trail bool
}

// parseRow splits a merged row into trimmed cells and reports its pipe
// style. A single leading and trailing pipe are stripped before
// splitting; backslash-escaped pipes stay inside their cell. A row
// with no unescaped pipes yields a single cell, which guards against
// merge artifacts.
func parseRow(line string) ([]string, PipeStyle) {
	s := strings.TrimSpace(line)
	style := PipeStyle{
		Lead:  strings.HasPrefix(s, "|"),
		Trail: strings.HasSuffix(s, "|") && !strings.HasSuffix(s, `\|`),
	}
	if style.Lead {
		s = s[1:]
	}
	if style.Trail && s != "" {
		s = s[:len(s)-1]
	}
	return splitCells(s), style
}

// splitCells splits on unescaped pipes and trims each cell. The
// backslash of an escaped pipe is preserved so rebuilt rows keep the
// escape.
func splitCells(s string) []string {
	var cells []string
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(cells, strings.TrimSpace(b.String()))
}

var sepCell = regexp.MustCompile(`^:?-{3,}:?$`)

// isSeparatorCell reports whether a cell is an alignment marker:
// optional leading colon, three or more dashes, optional trailing
// colon.
func isSeparatorCell(cell string) bool {
	return sepCell.MatchString(strings.TrimSpace(cell))
}

// isSeparatorRow reports whether every non-empty cell is a separator
// cell. A row of only empty cells is not a separator row; it carries
// no dash evidence.
func isSeparatorRow(cells []string) bool {
	marked := false
	for _, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if !isSeparatorCell(cell) {
			return false
		}
		marked = true
	}
	return marked
}
