// core/fastaclean/render.go
package fastaclean

import (
	"bufio"
	"io"
)

// Render writes records in order: header line, then the record's filtered
// stream re-chunked to width, every line terminated by a single '\n'. No
// blank line separates records and output ends with a '\n' after the last
// line. When haveWidth is false (no record in the file had a sequence line)
// each record's empty stream renders as one empty line.
func Render(w io.Writer, records []Record, width int, haveWidth bool) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if err := renderRecord(bw, r.Header, Filter(r.Lines), width, haveWidth); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func renderRecord(bw *bufio.Writer, header string, stream []byte, width int, haveWidth bool) error {
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if !haveWidth {
		width = 0
	}
	for _, line := range Rechunk(stream, width) {
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
