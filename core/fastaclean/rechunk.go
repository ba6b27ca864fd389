// core/fastaclean/rechunk.go
package fastaclean

// Rechunk splits stream into lines of exactly width bytes, with a shorter
// final line when the length is not an exact multiple. The concatenation of
// the returned lines equals stream byte for byte. An empty stream yields no
// lines. A non-positive width degrades to the whole stream as a single line,
// including the empty one.
func Rechunk(stream []byte, width int) [][]byte {
	if width <= 0 {
		return [][]byte{stream}
	}
	if len(stream) == 0 {
		return nil
	}
	lines := make([][]byte, 0, (len(stream)+width-1)/width)
	for off := 0; off < len(stream); off += width {
		end := off + width
		if end > len(stream) {
			end = len(stream)
		}
		lines = append(lines, stream[off:end])
	}
	return lines
}
