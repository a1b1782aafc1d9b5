// internal/writers/records.go
package writers

import (
	"io"

	"fb2nep/internal/dataset"
	"fb2nep/internal/output"
)

// StartRecordWriter spins up a writer goroutine that streams records received
// on the returned channel as CSV (header first). Close the channel when done;
// the error channel then yields exactly one value.
func StartRecordWriter(out io.Writer, bufSize int) (chan<- dataset.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan dataset.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		_, err := output.StreamCSV(out, in)
		errCh <- err
	}()

	return in, errCh
}
