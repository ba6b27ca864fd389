// internal/fastaio/write.go
package fastaio

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
)

// nopWriteCloser keeps the caller-owned writer (stdout) open across Close.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// multiWriteCloser closes the gzip layer before the file beneath it.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create returns a writer for path, overwriting an existing file. "-" writes
// to stdout (the writer the caller supplies); a .gz suffix wraps the file in
// a gzip writer, mirroring what Open accepts on the read side.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	}
	return fh, nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
