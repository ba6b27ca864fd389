// core/fastaclean/filter.go
package fastaclean

// Filter concatenates a record's raw sequence lines, uppercases every
// character and keeps only the bases A, C, G and T. Order-preserving and
// total over arbitrary input.
func Filter(lines []string) []byte {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	out := make([]byte, 0, n)
	for _, l := range lines {
		for i := 0; i < len(l); i++ {
			b := l[i]
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			switch b {
			case 'A', 'C', 'G', 'T':
				out = append(out, b)
			}
		}
	}
	return out
}
