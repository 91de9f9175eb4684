// Package tablemend repairs malformed Markdown tables inside a larger
// document.
//
// Given raw document text, it locates every region that was apparently
// intended as a pipe table, checks it against Markdown's table grammar,
// and rewrites only the regions that fail. Everything else — plain
// text, and tables that are already valid — comes back byte-for-byte
// identical. The entry point is [Fix]:
//
//	fixed := tablemend.Fix(markdown)
//
// # What gets fixed
//
// A candidate block is a maximal run of lines containing a pipe
// character, plus any non-blank pipe-free lines between them (treated
// as continuations of a wrapped cell). Within a block the fixer
// tolerates:
//
//   - ragged column counts — short rows are padded with empty cells,
//     long rows keep their content by folding the overflow into the
//     final cell
//   - a missing or malformed separator row — a canonical one is
//     synthesized after the header
//   - repeated separators — when a separator follows nearly every data
//     row, that rhythm is recognized and preserved rather than
//     collapsed
//   - wrapped cells — continuation lines are folded back into their
//     row before diagnosis
//
// Rebuilt rows use the block's original pipe style: leading and
// trailing pipes appear in the output exactly when the block's first
// row had them.
//
// # Guarantees
//
// Fix is a pure function over its input and total over all strings; it
// never fails, not even on the empty string. It is idempotent
// (Fix(Fix(x)) == Fix(x)), leaves valid tables untouched, and returns
// input without any pipe character unchanged.
//
// # Variants
//
// [Fixer] holds options; its zero value is what [Fix] uses. Set
// [Fixer.AlignColumns] to pad rewritten cells to uniform display
// width. [FixWithChanges] additionally reports each rewritten block as
// a [Change]. [FixReader] is the streaming form for io.Reader /
// io.Writer pipelines. [UnifiedDiff] renders a line diff between the
// original and fixed documents.
package tablemend
