// internal/dataset/params.go
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Fixed generator constants.
const (
	DefaultSeed = 11088
	DefaultN    = 1000

	// OutputFile is where the CLI writes the dataset by default.
	OutputFile = "fb2nep_data.csv"

	AgeMean = 55.0
	AgeSD   = 10.0
	BMIMean = 27.0
	BMISD   = 4.0

	NutrientMedian = 20.0 // exp(mu) of the underlying normal
	NutrientSigma  = 0.5

	// Decimal places kept after rounding.
	AgeDecimals      = 0
	BMIDecimals      = 1
	NutrientDecimals = 1
)

// Level is one category of a categorical column with its sampling weight.
type Level struct {
	Value  string
	Weight float64
}

// Categorical columns. Sex is a uniform choice; the others are weighted.
var (
	SexLevels              = []string{"female", "male"}
	SmokingLevels          = []Level{{"never", 0.5}, {"former", 0.3}, {"current", 0.2}}
	PhysicalActivityLevels = []Level{{"active", 0.6}, {"inactive", 0.4}}
	SocialClassLevels      = []Level{{"ABC1", 0.6}, {"C2DE", 0.4}}
)

// Binary risk factors are weighted choices over {0, 1}.
var (
	RiskFactor1Weights = []float64{0.8, 0.2}
	RiskFactor2Weights = []float64{0.7, 0.3}
)

// NutrientMu is ln(NutrientMedian), the mean of the underlying normal.
var NutrientMu = math.Log(NutrientMedian)

// ErrInvalidParams reports unusable generation parameters.
var ErrInvalidParams = errors.New("invalid dataset parameters")

// Params selects the seed and the number of records.
type Params struct {
	Seed uint32
	N    int
}

// DefaultParams returns the fixed fb2nep parameters (seed 11088, 1000 rows).
func DefaultParams() Params {
	return Params{Seed: DefaultSeed, N: DefaultN}
}

// Validate checks Params before generation.
func (p Params) Validate() error {
	if p.N < 0 {
		return fmt.Errorf("%w: N must be >= 0, got %d", ErrInvalidParams, p.N)
	}
	return nil
}

func weights(levels []Level) []float64 {
	w := make([]float64, len(levels))
	for i, l := range levels {
		w[i] = l.Weight
	}
	return w
}
