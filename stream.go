package tablemend

import (
	"bufio"
	"io"
	"strings"
)

// FixReader copies r to w with invalid tables rewritten, using a
// zero-value [Fixer].
func FixReader(w io.Writer, r io.Reader) error {
	return Fixer{}.FixReader(w, r)
}

// FixReader streams r to w, fixing tables as it goes. Non-table lines
// are written as they are read; only the currently open block is held
// in memory, so arbitrarily large documents need space proportional to
// their largest table. Output is identical to [Fixer.Fix] of the fully
// read input.
func (f Fixer) FixReader(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var block []string
	blockNL := false // last block line ended with a newline

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		fixed, _ := f.fixBlock(block)
		block = nil
		if _, err := bw.WriteString(strings.Join(fixed, "\n")); err != nil {
			return err
		}
		if blockNL {
			return bw.WriteByte('\n')
		}
		return nil
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line != "" {
			hadNL := strings.HasSuffix(line, "\n")
			text := strings.TrimSuffix(line, "\n")
			switch {
			case strings.Contains(text, "|"):
				block = append(block, text)
				blockNL = hadNL
			case len(block) > 0 && strings.TrimSpace(text) != "":
				block = append(block, text)
				blockNL = hadNL
			default:
				if ferr := flush(); ferr != nil {
					return ferr
				}
				if _, werr := bw.WriteString(line); werr != nil {
					return werr
				}
			}
		}
		if err == io.EOF {
			break
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return bw.Flush()
}
