// core/fastaclean/clean.go
package fastaclean

import (
	"bufio"
	"bytes"
	"context"
	"sync"
)

// Stats summarizes one cleaning run.
type Stats struct {
	Records       int
	SequenceLines int
	BasesKept     int
	Dropped       int
	Width         int
	WidthKnown    bool
}

// Clean runs the whole pipeline over an in-memory buffer: normalize, segment
// into records, then filter and re-chunk every record against the single
// width inferred from the first sequence line of the file.
func Clean(data []byte) []byte {
	out, _, _ := CleanContext(context.Background(), data, 1)
	return out
}

// CleanContext is Clean with per-record filtering fanned out to a worker
// pool. The width is inferred once before any worker starts; past that
// barrier records are independent, so output is byte-identical to the serial
// path for any thread count. The only error it can return is ctx.Err().
func CleanContext(ctx context.Context, data []byte, threads int) ([]byte, Stats, error) {
	if threads < 1 {
		threads = 1
	}
	records := Segment(Normalize(data))
	width, haveWidth := InferWidth(records)

	stats := Stats{Records: len(records), Width: width, WidthKnown: haveWidth}
	rawLen := 0
	for _, r := range records {
		stats.SequenceLines += len(r.Lines)
		for _, l := range r.Lines {
			rawLen += len(l)
		}
	}

	streams := make([][]byte, len(records))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, open := <-jobs:
					if !open {
						return
					}
					streams[i] = Filter(records[i].Lines)
				}
			}
		}()
	}
feed:
	for i := range records {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	for i, r := range records {
		stats.BasesKept += len(streams[i])
		// bufio over bytes.Buffer cannot fail
		_ = renderRecord(bw, r.Header, streams[i], width, haveWidth)
	}
	_ = bw.Flush()
	stats.Dropped = rawLen - stats.BasesKept
	return buf.Bytes(), stats, nil
}
