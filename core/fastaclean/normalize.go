// core/fastaclean/normalize.go
package fastaclean

// Normalize collapses every maximal run of '\n' and '\r' bytes, in any
// mixture and order, into a single '\n'. Leading and trailing runs collapse
// the same way; no other byte is touched. Total over arbitrary input and
// idempotent.
func Normalize(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inBreak := false
	for _, b := range data {
		if b == '\n' || b == '\r' {
			if !inBreak {
				out = append(out, '\n')
				inBreak = true
			}
			continue
		}
		out = append(out, b)
		inBreak = false
	}
	return out
}
