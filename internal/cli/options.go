// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"fb2nep/internal/dataset"
	"fb2nep/internal/output"
	"fb2nep/internal/writers"
)

// Options holds all CLI flags. Generator constants are not configurable.
type Options struct {
	// Output
	Output   string
	Codebook string
	Summary  string

	// Misc
	Verbose bool
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// -h/--help yields flag.ErrHelp.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Output, "output", dataset.OutputFile, "CSV destination ('-' = stdout)")
	fs.StringVar(&opt.Output, "o", dataset.OutputFile, "alias of --output")
	fs.StringVar(&opt.Codebook, "codebook", "", "YAML codebook destination")
	fs.StringVar(&opt.Summary, "summary", output.FormatNone, "summary: none | text | json")

	fs.BoolVar(&opt.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	switch o.Summary {
	case output.FormatNone, output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --summary %q", o.Summary)
	}
	if strings.TrimSpace(o.Output) == "" {
		return errors.New("--output must not be empty")
	}
	if o.Output == writers.StdoutPath && o.Summary != output.FormatNone {
		return errors.New("--output - conflicts with --summary (both use stdout)")
	}
	if o.Codebook == writers.StdoutPath && (o.Output == writers.StdoutPath || o.Summary != output.FormatNone) {
		return errors.New("--codebook - conflicts with other stdout output")
	}
	if o.Codebook != "" && o.Codebook == o.Output {
		return errors.New("--codebook and --output must differ")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
