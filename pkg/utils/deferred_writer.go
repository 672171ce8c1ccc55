// Package utils holds small io helpers shared by commands.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter holds writes in memory until Flush is called. With a
// positive Limit the oldest whole lines are dropped once the buffer grows
// past Limit bytes. Safe for concurrent use.
type DeferredWriter struct {
	Limit int

	mu      sync.Mutex
	buf     bytes.Buffer
	dropped int
}

// Write stores p in the buffer.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err := d.buf.Write(p)
	if err != nil {
		return n, err
	}

	if d.Limit > 0 {
		d.trim()
	}
	return n, nil
}

func (d *DeferredWriter) trim() {
	for d.buf.Len() > d.Limit {
		i := bytes.IndexByte(d.buf.Bytes(), '\n')
		if i < 0 {
			// A single oversized line; keep its tail.
			excess := d.buf.Len() - d.Limit
			d.buf.Next(excess)
			d.dropped++
			return
		}
		d.buf.Next(i + 1)
		d.dropped++
	}
}

// Dropped returns how many lines were discarded to stay under Limit.
func (d *DeferredWriter) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Flush writes all buffered data to w and clears the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dropped = 0
	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
