// internal/summary/summary.go
package summary

import (
	"math"

	"github.com/RaduBerinde/tdigest"

	"fb2nep/internal/dataset"
)

// digestDelta is the t-digest compression factor. At 1000 rows the digest
// keeps nearly every point, so quartiles are close to exact.
const digestDelta = 200

// Numeric holds descriptive statistics of one numeric column.
type Numeric struct {
	Name             string
	N                int
	Mean, SD         float64
	Min, Max         float64
	P25, Median, P75 float64
}

// LevelCount is one observed categorical level.
type LevelCount struct {
	Value      string
	Count      int
	Proportion float64
}

type Categorical struct {
	Name   string
	Levels []LevelCount
}

type Binary struct {
	Name       string
	Ones       int
	Prevalence float64
}

// Summary describes a generated Dataset.
type Summary struct {
	Seed            uint32
	N               int
	Numeric         []Numeric
	Categorical     []Categorical
	Binary          []Binary
	MeanProbability float64
}

// Compute summarizes ds; m supplies the modelled disease probability.
func Compute(ds dataset.Dataset, m dataset.Model) Summary {
	recs := ds.Records
	s := Summary{Seed: ds.Seed, N: len(recs)}

	s.Numeric = []Numeric{
		numeric(dataset.ColAge, recs, func(r dataset.Record) float64 { return float64(r.Age) }),
		numeric(dataset.ColBMI, recs, func(r dataset.Record) float64 { return r.BMI }),
		numeric(dataset.ColNutrientIntake, recs, func(r dataset.Record) float64 { return r.NutrientIntake }),
	}

	sexLevels := make([]dataset.Level, len(dataset.SexLevels))
	for i, v := range dataset.SexLevels {
		sexLevels[i] = dataset.Level{Value: v}
	}
	s.Categorical = []Categorical{
		categorical(dataset.ColSex, sexLevels, recs, func(r dataset.Record) string { return r.Sex }),
		categorical(dataset.ColSmokingStatus, dataset.SmokingLevels, recs, func(r dataset.Record) string { return r.SmokingStatus }),
		categorical(dataset.ColPhysicalActivity, dataset.PhysicalActivityLevels, recs, func(r dataset.Record) string { return r.PhysicalActivity }),
		categorical(dataset.ColSocialClass, dataset.SocialClassLevels, recs, func(r dataset.Record) string { return r.SocialClass }),
	}

	s.Binary = []Binary{
		binary(dataset.ColRiskFactor1, recs, func(r dataset.Record) int { return r.RiskFactor1 }),
		binary(dataset.ColRiskFactor2, recs, func(r dataset.Record) int { return r.RiskFactor2 }),
		binary(dataset.ColDisease, recs, func(r dataset.Record) int { return r.Disease }),
	}

	s.MeanProbability = math.NaN()
	if len(recs) > 0 {
		sum := 0.0
		for _, r := range recs {
			sum += m.Probability(r)
		}
		s.MeanProbability = sum / float64(len(recs))
	}
	return s
}

func numeric(name string, recs []dataset.Record, get func(dataset.Record) float64) Numeric {
	out := Numeric{Name: name, N: len(recs)}
	if len(recs) == 0 {
		nan := math.NaN()
		out.Mean, out.SD, out.Min, out.Max = nan, nan, nan, nan
		out.P25, out.Median, out.P75 = nan, nan, nan
		return out
	}

	b := tdigest.MakeBuilder(digestDelta)
	out.Min, out.Max = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, r := range recs {
		x := get(r)
		b.Add(x, 1)
		sum += x
		out.Min = math.Min(out.Min, x)
		out.Max = math.Max(out.Max, x)
	}
	out.Mean = sum / float64(len(recs))

	// Sample standard deviation (n-1 denominator).
	out.SD = math.NaN()
	if len(recs) > 1 {
		ss := 0.0
		for _, r := range recs {
			d := get(r) - out.Mean
			ss += d * d
		}
		out.SD = math.Sqrt(ss / float64(len(recs)-1))
	}

	td := b.Digest()
	out.P25 = td.Quantile(0.25)
	out.Median = td.Quantile(0.5)
	out.P75 = td.Quantile(0.75)
	return out
}

func categorical(name string, levels []dataset.Level, recs []dataset.Record, get func(dataset.Record) string) Categorical {
	counts := make(map[string]int, len(levels))
	for _, r := range recs {
		counts[get(r)]++
	}
	out := Categorical{Name: name, Levels: make([]LevelCount, len(levels))}
	for i, l := range levels {
		out.Levels[i] = LevelCount{Value: l.Value, Count: counts[l.Value], Proportion: ratio(counts[l.Value], len(recs))}
	}
	return out
}

func binary(name string, recs []dataset.Record, get func(dataset.Record) int) Binary {
	ones := 0
	for _, r := range recs {
		ones += get(r)
	}
	return Binary{Name: name, Ones: ones, Prevalence: ratio(ones, len(recs))}
}

func ratio(k, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return float64(k) / float64(n)
}
