// internal/writers/writers.go

// Package writers turns approach streams into serialized outputs. Writers
// own all presentation knowledge; the database stays domain-only and the
// apps stay orchestration-only.
package writers

import (
	"fmt"
	"io"

	"neoscan/internal/output"

	"neoscan-core/neo"
)

// StartApproachWriter spins up a writer goroutine for one output format.
// CSV streams rows as they arrive; JSON buffers and writes the whole array
// once, at channel close. The error channel yields exactly one value after
// the input channel is closed.
func StartApproachWriter(out io.Writer, format string, header bool, bufSize int) (chan<- *neo.CloseApproach, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan *neo.CloseApproach, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatCSV:
			err = output.StreamCSV(out, in, header)

		case output.FormatJSON:
			buf := []*neo.CloseApproach{}
			for ca := range in {
				buf = append(buf, ca)
			}
			err = output.WriteJSON(out, buf)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so a mid-stream failure never blocks the producer.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
