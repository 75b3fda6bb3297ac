// Package token extracts number tokens from schematic lines.
//
// [Scan] yields the maximal runs of ASCII digits on a single line as
// [Token] values. [Tokens] does the same for a whole set of lines, top to
// bottom.
//
// Columns are byte offsets. A token's End is exclusive.
package token
