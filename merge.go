package tablemend

import "strings"

// mergeContinuations folds wrapped continuation lines into the logical
// row they extend. A pipe-bearing line starts a new row; a non-blank
// pipe-free line is space-joined onto the pending row; a blank line
// closes the pending row and is kept as a standalone entry. The result
// never has more entries than the input.
func mergeContinuations(lines []string) []string {
	var merged []string
	var current string
	pending := false

	for _, line := range lines {
		switch {
		case strings.Contains(line, "|"):
			if pending {
				merged = append(merged, current)
			}
			current = strings.TrimRight(line, " \t")
			pending = true
		case strings.TrimSpace(line) != "":
			if pending {
				current += " " + strings.TrimSpace(line)
			} else {
				current = strings.TrimRight(line, " \t")
				pending = true
			}
		default:
			if pending {
				merged = append(merged, current)
				pending = false
			}
			merged = append(merged, line)
		}
	}
	if pending {
		merged = append(merged, current)
	}
	return merged
}
