// internal/writers/sink.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// StdoutPath selects standard output as a destination.
const StdoutPath = "-"

// ZstdSuffix marks destinations written through a zstd encoder.
const ZstdSuffix = ".zst"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type zstdFile struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdFile) Close() error {
	return errors.Join(z.Encoder.Close(), z.f.Close())
}

// Create opens a destination for writing. "-" returns stdout (Close is a
// no-op); a ".zst" suffix wraps the file in a zstd encoder; anything else is
// a plain file. Existing files are truncated.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == StdoutPath {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ZstdSuffix) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd %s: %w", path, err)
	}
	return &zstdFile{Encoder: enc, f: f}, nil
}
