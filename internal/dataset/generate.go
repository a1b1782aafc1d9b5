// internal/dataset/generate.go
package dataset

import (
	"context"
	"fmt"

	"fb2nep/internal/randomstate"
)

// Generate draws a Dataset of p.N records from a generator seeded with p.Seed.
//
// Covariates are drawn one whole column at a time in file order; the outcome
// column is drawn last. Changing that order changes every value after the
// first column.
func Generate(ctx context.Context, p Params) (Dataset, error) {
	if err := p.Validate(); err != nil {
		return Dataset{}, err
	}
	rs := randomstate.New(p.Seed)
	n := p.N
	recs := make([]Record, n)
	for i := range recs {
		recs[i].ID = i + 1
	}

	steps := []struct {
		name string
		fill func(*randomstate.State, []Record) error
	}{
		{ColAge, fillAge},
		{ColSex, fillSex},
		{ColBMI, fillBMI},
		{ColSmokingStatus, fillLevels(SmokingLevels, func(r *Record, v string) { r.SmokingStatus = v })},
		{ColPhysicalActivity, fillLevels(PhysicalActivityLevels, func(r *Record, v string) { r.PhysicalActivity = v })},
		{ColNutrientIntake, fillNutrient},
		{ColSocialClass, fillLevels(SocialClassLevels, func(r *Record, v string) { r.SocialClass = v })},
		{ColRiskFactor1, fillBinary(RiskFactor1Weights, func(r *Record, v int) { r.RiskFactor1 = v })},
		{ColRiskFactor2, fillBinary(RiskFactor2Weights, func(r *Record, v int) { r.RiskFactor2 = v })},
		{ColDisease, fillDisease(DefaultModel)},
	}
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		if err := st.fill(rs, recs); err != nil {
			return Dataset{}, fmt.Errorf("generate %s: %w", st.name, err)
		}
	}
	return Dataset{Seed: p.Seed, Records: recs}, nil
}

func fillAge(rs *randomstate.State, recs []Record) error {
	for i := range recs {
		recs[i].Age = int(randomstate.RoundDecimals(rs.Normal(AgeMean, AgeSD), AgeDecimals))
	}
	return nil
}

func fillSex(rs *randomstate.State, recs []Record) error {
	for i := range recs {
		k, err := rs.Choice(len(SexLevels))
		if err != nil {
			return err
		}
		recs[i].Sex = SexLevels[k]
	}
	return nil
}

func fillBMI(rs *randomstate.State, recs []Record) error {
	for i := range recs {
		recs[i].BMI = randomstate.RoundDecimals(rs.Normal(BMIMean, BMISD), BMIDecimals)
	}
	return nil
}

func fillNutrient(rs *randomstate.State, recs []Record) error {
	for i := range recs {
		recs[i].NutrientIntake = randomstate.RoundDecimals(rs.LogNormal(NutrientMu, NutrientSigma), NutrientDecimals)
	}
	return nil
}

func fillLevels(levels []Level, set func(*Record, string)) func(*randomstate.State, []Record) error {
	return func(rs *randomstate.State, recs []Record) error {
		cdf, err := randomstate.NewCDF(weights(levels))
		if err != nil {
			return err
		}
		for i := range recs {
			set(&recs[i], levels[rs.ChoiceCDF(cdf)].Value)
		}
		return nil
	}
}

func fillBinary(w []float64, set func(*Record, int)) func(*randomstate.State, []Record) error {
	return func(rs *randomstate.State, recs []Record) error {
		cdf, err := randomstate.NewCDF(w)
		if err != nil {
			return err
		}
		for i := range recs {
			set(&recs[i], rs.ChoiceCDF(cdf))
		}
		return nil
	}
}

func fillDisease(m Model) func(*randomstate.State, []Record) error {
	return func(rs *randomstate.State, recs []Record) error {
		for i := range recs {
			d, err := rs.Bernoulli(m.Probability(recs[i]))
			if err != nil {
				return fmt.Errorf("record %d: %w", recs[i].ID, err)
			}
			recs[i].Disease = d
		}
		return nil
	}
}
