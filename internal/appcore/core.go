// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fb2nep/internal/cmdutil"
	"fb2nep/internal/codebook"
	"fb2nep/internal/dataset"
	"fb2nep/internal/output"
	"fb2nep/internal/summary"
	"fb2nep/internal/writers"
	"fb2nep/pkg/api"
)

type Options struct {
	Output   string
	Codebook string
	Summary  string

	Verbose bool
	Quiet   bool
}

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Run generates the dataset for p, streams it to o.Output and writes the
// optional codebook and summary. It returns a process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, p dataset.Params) int {
	log := cmdutil.NewLogger(stderr, o.Verbose, o.Quiet)
	outw := bufio.NewWriter(stdout)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	ds, err := dataset.Generate(ctx, p)
	if err != nil {
		return fail(stderr, err)
	}
	log.Info("generated dataset", "records", ds.Len(), "seed", ds.Seed)

	rows, err := writeDataset(ctx, log, outw, o.Output, ds)
	if err != nil {
		return finish(stderr, outw, err)
	}
	log.Info("wrote dataset", "path", o.Output, "rows", rows)

	if o.Codebook != "" {
		if err := writeCodebook(outw, o.Codebook, codebook.Build(p, dataset.DefaultModel, o.Output)); err != nil {
			return finish(stderr, outw, err)
		}
		log.Info("wrote codebook", "path", o.Codebook)
	}

	if o.Summary != "" && o.Summary != output.FormatNone {
		if err := writers.WriteSummary(o.Summary, outw, summary.Compute(ds, dataset.DefaultModel)); err != nil {
			return finish(stderr, outw, err)
		}
	}
	return finish(stderr, outw, nil)
}

func writeDataset(ctx context.Context, log *slog.Logger, stdout io.Writer, path string, ds dataset.Dataset) (int, error) {
	if path != writers.StdoutPath {
		if _, err := os.Stat(path); err == nil {
			log.Info("overwriting existing file", "path", path)
		}
	}
	dst, err := writers.Create(path, stdout)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(dst)
	in, writeErr := writers.StartRecordWriter(bw, 64)

	var sendErr error
	n := 0
send:
	for _, r := range ds.Records {
		select {
		case in <- r:
			n++
		case <-ctx.Done():
			sendErr = ctx.Err()
			break send
		}
	}
	close(in)

	werr := <-writeErr
	if werr == nil {
		werr = bw.Flush()
	}
	if cerr := dst.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("close %s: %w", path, cerr)
	}
	if sendErr != nil {
		return n, sendErr
	}
	if werr != nil {
		return n, fmt.Errorf("write %s: %w", path, werr)
	}
	return n, nil
}

func writeCodebook(stdout io.Writer, path string, cb api.CodebookV1) error {
	dst, err := writers.Create(path, stdout)
	if err != nil {
		return err
	}
	werr := codebook.Write(dst, cb)
	if cerr := dst.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("close %s: %w", path, cerr)
	}
	return werr
}

func fail(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	}
	fmt.Fprintln(stderr, err)
	return ExitIO
}

// finish flushes buffered stdout and maps the first error to an exit code.
func finish(stderr io.Writer, outw *bufio.Writer, err error) int {
	ferr := outw.Flush()
	if err != nil {
		return fail(stderr, err)
	}
	if ferr != nil {
		return fail(stderr, ferr)
	}
	return ExitOK
}
