// internal/output/csv.go
package output

import (
	"io"

	"fb2nep/internal/dataset"
)

// WriteCSV writes the header and every record of ds.
func WriteCSV(w io.Writer, ds dataset.Dataset) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	buf := make([]byte, 0, 128)
	for _, r := range ds.Records {
		buf = AppendRow(buf[:0], r)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// StreamCSV writes the header, then one row per record received on in, until
// in is closed. After a write error the channel is drained so senders never
// block.
func StreamCSV(w io.Writer, in <-chan dataset.Record) (int, error) {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		for range in {
		}
		return 0, err
	}
	n := 0
	buf := make([]byte, 0, 128)
	for r := range in {
		buf = AppendRow(buf[:0], r)
		if _, err := w.Write(buf); err != nil {
			for range in {
			}
			return n, err
		}
		n++
	}
	return n, nil
}
