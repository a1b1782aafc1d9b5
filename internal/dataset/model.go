// internal/dataset/model.go
package dataset

import "math"

// Model is the logistic outcome model. Each coefficient multiplies either a
// covariate or a 0/1 indicator.
type Model struct {
	Age            float64
	Male           float64
	BMI            float64
	CurrentSmoker  float64
	Inactive       float64
	NutrientIntake float64
	RiskFactor1    float64
	RiskFactor2    float64
	Intercept      float64
}

// DefaultModel holds the fb2nep coefficients.
var DefaultModel = Model{
	Age:            0.03,
	Male:           0.05,
	BMI:            0.04,
	CurrentSmoker:  0.3,
	Inactive:       0.2,
	NutrientIntake: 0.02,
	RiskFactor1:    0.25,
	RiskFactor2:    0.4,
	Intercept:      -10,
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// LogOdds returns the linear predictor for r. Terms are summed left to right
// in column order and each product is rounded before the add so results do
// not depend on FMA contraction.
func (m Model) LogOdds(r Record) float64 {
	x := float64(m.Age * float64(r.Age))
	x += float64(m.Male * indicator(r.Sex == "male"))
	x += float64(m.BMI * r.BMI)
	x += float64(m.CurrentSmoker * indicator(r.SmokingStatus == "current"))
	x += float64(m.Inactive * indicator(r.PhysicalActivity == "inactive"))
	x += float64(m.NutrientIntake * r.NutrientIntake)
	x += float64(m.RiskFactor1 * float64(r.RiskFactor1))
	x += float64(m.RiskFactor2 * float64(r.RiskFactor2))
	return x + m.Intercept
}

// Probability is Sigmoid(LogOdds(r)).
func (m Model) Probability(r Record) float64 {
	return Sigmoid(m.LogOdds(r))
}

// Sigmoid maps the real line onto (0, 1).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
