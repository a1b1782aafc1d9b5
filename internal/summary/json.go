// internal/summary/json.go
package summary

import (
	"io"

	"github.com/valyala/fastjson"
)

func number(a *fastjson.Arena, v *float64) *fastjson.Value {
	if v == nil {
		return a.NewNull()
	}
	return a.NewNumberFloat64(*v)
}

// MarshalJSON appends the v1 JSON document for s to dst. Keys follow the
// api.SummaryV1 tags, in declaration order.
func MarshalJSON(dst []byte, s Summary) []byte {
	v := ToAPI(s)
	var a fastjson.Arena

	root := a.NewObject()
	root.Set("dataset", a.NewString(v.Dataset))
	root.Set("seed", a.NewNumberInt(int(v.Seed)))
	root.Set("n", a.NewNumberInt(v.N))

	nums := a.NewArray()
	for i, n := range v.Numeric {
		o := a.NewObject()
		o.Set("name", a.NewString(n.Name))
		o.Set("n", a.NewNumberInt(n.N))
		o.Set("mean", number(&a, n.Mean))
		o.Set("sd", number(&a, n.SD))
		o.Set("min", number(&a, n.Min))
		o.Set("p25", number(&a, n.P25))
		o.Set("median", number(&a, n.Median))
		o.Set("p75", number(&a, n.P75))
		o.Set("max", number(&a, n.Max))
		nums.SetArrayItem(i, o)
	}
	root.Set("numeric", nums)

	cats := a.NewArray()
	for i, c := range v.Categorical {
		o := a.NewObject()
		o.Set("name", a.NewString(c.Name))
		levels := a.NewArray()
		for j, l := range c.Levels {
			lo := a.NewObject()
			lo.Set("value", a.NewString(l.Value))
			lo.Set("count", a.NewNumberInt(l.Count))
			lo.Set("proportion", number(&a, l.Proportion))
			levels.SetArrayItem(j, lo)
		}
		o.Set("levels", levels)
		cats.SetArrayItem(i, o)
	}
	root.Set("categorical", cats)

	bins := a.NewArray()
	for i, b := range v.Binary {
		o := a.NewObject()
		o.Set("name", a.NewString(b.Name))
		o.Set("ones", a.NewNumberInt(b.Ones))
		o.Set("prevalence", number(&a, b.Prevalence))
		bins.SetArrayItem(i, o)
	}
	root.Set("binary", bins)
	root.Set("mean_probability", number(&a, v.MeanProbability))

	return root.MarshalTo(dst)
}

// WriteJSON writes the v1 JSON document for s followed by a newline.
func WriteJSON(w io.Writer, s Summary) error {
	buf := MarshalJSON(nil, s)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}
