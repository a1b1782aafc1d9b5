package summary

import (
	"math"

	"fb2nep/pkg/api"
)

// DatasetName labels summaries and codebooks.
const DatasetName = "fb2nep"

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToAPI converts s to the stable v1 wire type.
func ToAPI(s Summary) api.SummaryV1 {
	out := api.SummaryV1{
		Dataset:         DatasetName,
		Seed:            s.Seed,
		N:               s.N,
		Numeric:         make([]api.NumericV1, 0, len(s.Numeric)),
		Categorical:     make([]api.CategoricalV1, 0, len(s.Categorical)),
		Binary:          make([]api.BinaryV1, 0, len(s.Binary)),
		MeanProbability: finite(s.MeanProbability),
	}
	for _, n := range s.Numeric {
		out.Numeric = append(out.Numeric, api.NumericV1{
			Name: n.Name, N: n.N,
			Mean: finite(n.Mean), SD: finite(n.SD),
			Min: finite(n.Min), P25: finite(n.P25), Median: finite(n.Median), P75: finite(n.P75), Max: finite(n.Max),
		})
	}
	for _, c := range s.Categorical {
		cv := api.CategoricalV1{Name: c.Name, Levels: make([]api.LevelCountV1, 0, len(c.Levels))}
		for _, l := range c.Levels {
			cv.Levels = append(cv.Levels, api.LevelCountV1{Value: l.Value, Count: l.Count, Proportion: finite(l.Proportion)})
		}
		out.Categorical = append(out.Categorical, cv)
	}
	for _, b := range s.Binary {
		out.Binary = append(out.Binary, api.BinaryV1{Name: b.Name, Ones: b.Ones, Prevalence: finite(b.Prevalence)})
	}
	return out
}
