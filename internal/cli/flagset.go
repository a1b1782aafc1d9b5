package cli

import (
	"flag"
	"fmt"

	"fb2nep/internal/dataset"
	"fb2nep/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the fb2nep-gen usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – simulated fb2nep epidemiological dataset\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Writes %d records (seed %d) to %s.\n", dataset.DefaultN, dataset.DefaultSeed, dataset.OutputFile)
		fmt.Fprintf(out, "Usage: %s [flags]\n", name)

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output path           CSV destination; '-' = stdout, *.zst = zstd [%s]\n", def("output"))
		fmt.Fprintln(out, "      --codebook path         Also write a YAML codebook of every column")
		fmt.Fprintf(out, "      --summary string        Summary on stdout: none | text | json [%s]\n", def("summary"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --verbose               Log progress to stderr [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
