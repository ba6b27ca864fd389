// core/fastaclean/width.go
package fastaclean

// InferWidth returns the target line width for a whole file: the length of
// the first raw sequence line of the first record that has one. The width is
// measured before filtering, so characters that filtering later drops still
// count toward it; the output adjusts by moving line breaks, never by
// removing sequence characters. ok is false when no record in the file has
// any sequence line.
func InferWidth(records []Record) (width int, ok bool) {
	for _, r := range records {
		if len(r.Lines) > 0 {
			return len(r.Lines[0]), true
		}
	}
	return 0, false
}
