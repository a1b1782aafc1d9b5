// internal/codebook/codebook.go
package codebook

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fb2nep/internal/dataset"
	"fb2nep/pkg/api"
)

// Generator names the random stream the dataset is drawn from.
const Generator = "mt19937 (legacy numpy RandomState stream)"

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func levels(ls []dataset.Level) []api.LevelV1 {
	out := make([]api.LevelV1, len(ls))
	for i, l := range ls {
		out[i] = api.LevelV1{Value: l.Value, Probability: floatp(l.Weight)}
	}
	return out
}

func binaryLevels(w []float64) []api.LevelV1 {
	out := make([]api.LevelV1, len(w))
	for i, p := range w {
		out[i] = api.LevelV1{Value: fmt.Sprint(i), Probability: floatp(p)}
	}
	return out
}

// Build describes a dataset generated with p, scored with m and written to
// file ("-" for stdout).
func Build(p dataset.Params, m dataset.Model, file string) api.CodebookV1 {
	sex := make([]api.LevelV1, len(dataset.SexLevels))
	for i, v := range dataset.SexLevels {
		sex[i] = api.LevelV1{Value: v}
	}

	return api.CodebookV1{
		Version:   1,
		Dataset:   "fb2nep",
		File:      file,
		Records:   p.N,
		Seed:      p.Seed,
		Generator: Generator,
		Variables: []api.VariableV1{
			{Name: dataset.ColID, Kind: "integer", Description: "participant identifier, 1..N", Distribution: "sequence"},
			{
				Name: dataset.ColAge, Kind: "integer", Description: "age in years", Distribution: "normal",
				Parameters: map[string]float64{"mean": dataset.AgeMean, "sd": dataset.AgeSD},
				Decimals:   intp(dataset.AgeDecimals),
			},
			{Name: dataset.ColSex, Kind: "categorical", Description: "sex", Distribution: "uniform choice", Levels: sex},
			{
				Name: dataset.ColBMI, Kind: "decimal", Description: "body mass index, kg/m2", Distribution: "normal",
				Parameters: map[string]float64{"mean": dataset.BMIMean, "sd": dataset.BMISD},
				Decimals:   intp(dataset.BMIDecimals),
			},
			{Name: dataset.ColSmokingStatus, Kind: "categorical", Description: "smoking status", Distribution: "weighted choice", Levels: levels(dataset.SmokingLevels)},
			{Name: dataset.ColPhysicalActivity, Kind: "categorical", Description: "physical activity", Distribution: "weighted choice", Levels: levels(dataset.PhysicalActivityLevels)},
			{
				Name: dataset.ColNutrientIntake, Kind: "decimal", Description: "daily nutrient intake", Distribution: "lognormal",
				Parameters: map[string]float64{"meanlog": dataset.NutrientMu, "sdlog": dataset.NutrientSigma},
				Decimals:   intp(dataset.NutrientDecimals),
			},
			{Name: dataset.ColSocialClass, Kind: "categorical", Description: "social class", Distribution: "weighted choice", Levels: levels(dataset.SocialClassLevels)},
			{Name: dataset.ColRiskFactor1, Kind: "binary", Description: "risk factor 1 present", Distribution: "weighted choice", Levels: binaryLevels(dataset.RiskFactor1Weights)},
			{Name: dataset.ColRiskFactor2, Kind: "binary", Description: "risk factor 2 present", Distribution: "weighted choice", Levels: binaryLevels(dataset.RiskFactor2Weights)},
			{Name: dataset.ColDisease, Kind: "binary", Description: "disease outcome", Distribution: "bernoulli(sigmoid(log_odds))"},
		},
		Outcome: api.OutcomeV1{
			Variable:  dataset.ColDisease,
			Link:      "logit",
			Intercept: m.Intercept,
			Coefficients: []api.CoefficientV1{
				{Term: dataset.ColAge, Value: m.Age},
				{Term: dataset.ColSex + " == male", Value: m.Male},
				{Term: dataset.ColBMI, Value: m.BMI},
				{Term: dataset.ColSmokingStatus + " == current", Value: m.CurrentSmoker},
				{Term: dataset.ColPhysicalActivity + " == inactive", Value: m.Inactive},
				{Term: dataset.ColNutrientIntake, Value: m.NutrientIntake},
				{Term: dataset.ColRiskFactor1, Value: m.RiskFactor1},
				{Term: dataset.ColRiskFactor2, Value: m.RiskFactor2},
			},
		},
	}
}

// Write encodes cb as YAML.
func Write(w io.Writer, cb api.CodebookV1) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cb); err != nil {
		return fmt.Errorf("codebook: %w", err)
	}
	return enc.Close()
}

// Read decodes a YAML codebook.
func Read(r io.Reader) (api.CodebookV1, error) {
	var cb api.CodebookV1
	if err := yaml.NewDecoder(r).Decode(&cb); err != nil {
		return cb, fmt.Errorf("codebook: %w", err)
	}
	return cb, nil
}
