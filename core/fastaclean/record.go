// core/fastaclean/record.go
package fastaclean

import "bytes"

// HeaderMarker starts a FASTA header line.
const HeaderMarker = '>'

// Record is one FASTA record as it appeared in normalized input: the header
// line verbatim (marker included) plus the raw sequence lines in input order.
type Record struct {
	Header string
	Lines  []string
}

// Segment splits normalized text into records. A line starting with
// HeaderMarker opens a new record; every following line up to the next header
// or EOF belongs to it. Text before the first header is discarded. A record
// with zero sequence lines is legal.
func Segment(normalized []byte) []Record {
	var records []Record
	for _, line := range bytes.Split(normalized, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if line[0] == HeaderMarker {
			records = append(records, Record{Header: string(line)})
			continue
		}
		if len(records) == 0 {
			continue
		}
		last := &records[len(records)-1]
		last.Lines = append(last.Lines, string(line))
	}
	return records
}
