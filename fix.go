package tablemend

import (
	"slices"
	"strings"
)

// tablePattern classifies a block's structural intent.
type tablePattern int

const (
	// patternStandard is a single separator row after the header.
	patternStandard tablePattern = iota
	// patternRepeated is a separator row after every data row, the
	// rhythm of bullet-style pseudo-tables.
	patternRepeated
)

// Fixer fixes invalid Markdown tables. The zero value reconstructs
// rows in minimal form; set AlignColumns to pad reconstructed cells to
// uniform display width. Either way, valid tables and non-table text
// pass through byte-for-byte.
type Fixer struct {
	// AlignColumns pads cells of rewritten tables so every pipe in a
	// column lines up. It never touches tables that were already
	// valid.
	AlignColumns bool
}

// Change records one rewritten block.
type Change struct {
	Line   int    // 1-based line number of the block's first line
	Before string // original block text
	After  string // rewritten block text
}

// Fix returns markdown with every invalid table rewritten using a
// zero-value [Fixer]. It never fails; input that contains no fixable
// table is returned unchanged.
func Fix(markdown string) string {
	return Fixer{}.Fix(markdown)
}

// FixWithChanges is [Fix] plus a record of each rewritten block.
func FixWithChanges(markdown string) (string, []Change) {
	return Fixer{}.FixWithChanges(markdown)
}

// Fix returns markdown with every invalid table rewritten.
func (f Fixer) Fix(markdown string) string {
	fixed, _ := f.FixWithChanges(markdown)
	return fixed
}

// FixWithChanges returns the fixed document and one [Change] per block
// that was rewritten. An empty change list means the output equals the
// input.
func (f Fixer) FixWithChanges(markdown string) (string, []Change) {
	lines := strings.Split(markdown, "\n")
	out := make([]string, 0, len(lines))
	var changes []Change
	for _, seg := range segmentLines(lines) {
		if seg.kind == textSegment {
			out = append(out, seg.lines...)
			continue
		}
		fixed, changed := f.fixBlock(seg.lines)
		if changed {
			changes = append(changes, Change{
				Line:   seg.start + 1,
				Before: strings.Join(seg.lines, "\n"),
				After:  strings.Join(fixed, "\n"),
			})
		}
		out = append(out, fixed...)
	}
	return strings.Join(out, "\n"), changes
}

// fixBlock decides one block's fate: too little evidence or already
// valid means the original lines come back untouched.
func (f Fixer) fixBlock(block []string) ([]string, bool) {
	merged := mergeContinuations(block)
	if len(merged) < 2 || !slices.ContainsFunc(merged, hasPipe) {
		return block, false
	}
	if isValidTable(merged) {
		return block, false
	}
	fixed := f.reconstruct(merged)
	if slices.Equal(fixed, block) {
		return block, false
	}
	return fixed, true
}

func hasPipe(s string) bool { return strings.Contains(s, "|") }

// reconstruct rewrites an invalid block in canonical form: every row
// normalized to the block's maximum cell count, a synthesized
// separator after the header, and the original pipe style throughout.
func (f Fixer) reconstruct(merged []string) []string {
	var parsed [][]string
	var style PipeStyle
	for _, line := range merged {
		if !hasPipe(line) {
			continue
		}
		cells, st := parseRow(line)
		if parsed == nil {
			style = st
		}
		parsed = append(parsed, cells)
	}
	if len(parsed) == 0 {
		return merged
	}

	maxCols := 0
	for _, row := range parsed {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	pattern := detectPattern(parsed)

	// Header first, then every non-separator row in original order.
	rows := [][]string{normalizeRow(parsed[0], maxCols)}
	for _, row := range parsed[1:] {
		if !isSeparatorRow(row) {
			rows = append(rows, normalizeRow(row, maxCols))
		}
	}

	// An empty first or last cell is invisible without its boundary
	// pipe; the rebuilt row would re-parse with fewer cells and the
	// fix would not be a fixpoint. Force the pipe in that case.
	for _, row := range rows {
		if row[0] == "" {
			style.Lead = true
		}
		if row[len(row)-1] == "" {
			style.Trail = true
		}
	}

	var widths []int
	if f.AlignColumns {
		widths = columnWidths(rows, maxCols)
	}
	sep := rebuildRow(separatorCells(maxCols, widths), style, widths)

	out := []string{rebuildRow(rows[0], style, widths), sep}
	for _, row := range rows[1:] {
		out = append(out, rebuildRow(row, style, widths))
		if pattern == patternRepeated {
			out = append(out, sep)
		}
	}
	return out
}

// detectPattern reports repeated-separator intent: with at least three
// rows and two separator rows, enough separators sitting at odd
// indices (right after a data row) means the author put one after
// every entry.
func detectPattern(rows [][]string) tablePattern {
	if len(rows) < 3 {
		return patternStandard
	}
	oddSeps := 0
	total := 0
	for i, row := range rows {
		if isSeparatorRow(row) {
			total++
			if i%2 == 1 {
				oddSeps++
			}
		}
	}
	if total < 2 {
		return patternStandard
	}
	if 2*oddSeps >= (len(rows)-1)/2 {
		return patternRepeated
	}
	return patternStandard
}

// normalizeRow brings a row to target cells: short rows are padded
// with empty cells, long rows keep all content by joining the overflow
// into the final cell.
func normalizeRow(row []string, target int) []string {
	switch {
	case len(row) < target:
		out := make([]string, target)
		copy(out, row)
		return out
	case len(row) > target:
		if target <= 1 {
			return []string{strings.Join(row, " ")}
		}
		out := make([]string, target)
		copy(out, row[:target-1])
		out[target-1] = strings.Join(row[target-1:], " ")
		return out
	default:
		return row
	}
}
