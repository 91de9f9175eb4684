package tablemend

import "strings"

// segmentKind distinguishes plain text from table candidates.
type segmentKind int

const (
	textSegment segmentKind = iota
	tableSegment
)

// segment is a maximal run of lines of one kind. Text segments hold
// exactly one line; table segments hold every line of one candidate
// block, in original order.
type segment struct {
	kind  segmentKind
	start int // 0-based index of the first line in the document
	lines []string
}

// segmentLines partitions document lines into alternating text and
// table segments. A line joins the open block if it contains a pipe,
// or if a block is open and the line is non-blank (a continuation
// candidate). A blank line, or a pipe-free line with no block open,
// closes the block and passes through as text. No line is dropped or
// duplicated; concatenating the segments' lines reproduces the input.
func segmentLines(lines []string) []segment {
	var segs []segment
	var block []string
	blockStart := 0

	flush := func() {
		if len(block) > 0 {
			segs = append(segs, segment{kind: tableSegment, start: blockStart, lines: block})
			block = nil
		}
	}

	for i, line := range lines {
		switch {
		case strings.Contains(line, "|"):
			if len(block) == 0 {
				blockStart = i
			}
			block = append(block, line)
		case len(block) > 0 && strings.TrimSpace(line) != "":
			block = append(block, line)
		default:
			flush()
			segs = append(segs, segment{kind: textSegment, start: i, lines: []string{line}})
		}
	}
	flush()
	return segs
}
