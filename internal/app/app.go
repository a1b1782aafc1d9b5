// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fb2nep/internal/appcore"
	"fb2nep/internal/cli"
	"fb2nep/internal/dataset"
	"fb2nep/internal/version"
	"fb2nep/internal/writers"
)

// Name is the binary name used in usage and version output.
const Name = "fb2nep-gen"

// RunContext parses argv and runs the generator. With no arguments it writes
// fb2nep_data.csv in the working directory and prints nothing.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	coreOpts := appcore.Options{
		Output:   opts.Output,
		Codebook: opts.Codebook,
		Summary:  opts.Summary,
		Verbose:  opts.Verbose,
		Quiet:    opts.Quiet,
	}
	return appcore.Run(parent, stdout, stderr, coreOpts, dataset.DefaultParams())
}

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitIO
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
