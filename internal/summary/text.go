// internal/summary/text.go
package summary

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TextHeader is the header row of the text summary.
const TextHeader = "variable\tlevel\tstatistic\tvalue"

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteText writes s as long-format TSV: one statistic per line.
func WriteText(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s: %d records, seed %d\n", DatasetName, s.N, s.Seed)
	fmt.Fprintln(bw, TextHeader)
	for _, n := range s.Numeric {
		fmt.Fprintf(bw, "%s\t\tn\t%d\n", n.Name, n.N)
		for _, st := range []struct {
			k string
			v float64
		}{
			{"mean", n.Mean}, {"sd", n.SD}, {"min", n.Min}, {"p25", n.P25},
			{"median", n.Median}, {"p75", n.P75}, {"max", n.Max},
		} {
			fmt.Fprintf(bw, "%s\t\t%s\t%s\n", n.Name, st.k, num(st.v))
		}
	}
	for _, c := range s.Categorical {
		for _, l := range c.Levels {
			fmt.Fprintf(bw, "%s\t%s\tcount\t%d\n", c.Name, l.Value, l.Count)
			fmt.Fprintf(bw, "%s\t%s\tproportion\t%s\n", c.Name, l.Value, num(l.Proportion))
		}
	}
	for _, b := range s.Binary {
		fmt.Fprintf(bw, "%s\t1\tcount\t%d\n", b.Name, b.Ones)
		fmt.Fprintf(bw, "%s\t1\tprevalence\t%s\n", b.Name, num(b.Prevalence))
	}
	fmt.Fprintf(bw, "model\t\tmean_probability\t%s\n", num(s.MeanProbability))
	return bw.Flush()
}
