// pkg/api/codebook_v1.go
package api

// CodebookV1 is the stable YAML schema of the data dictionary written by
// --codebook. Add new fields only with ",omitempty".
type CodebookV1 struct {
	Version   int          `yaml:"version"`
	Dataset   string       `yaml:"dataset"`
	File      string       `yaml:"file"`
	Records   int          `yaml:"records"`
	Seed      uint32       `yaml:"seed"`
	Generator string       `yaml:"generator"`
	Variables []VariableV1 `yaml:"variables"`
	Outcome   OutcomeV1    `yaml:"outcome"`
}

// VariableV1 describes one column.
type VariableV1 struct {
	Name         string             `yaml:"name"`
	Kind         string             `yaml:"kind"` // integer | decimal | categorical | binary
	Description  string             `yaml:"description"`
	Distribution string             `yaml:"distribution"`
	Parameters   map[string]float64 `yaml:"parameters,omitempty"`
	Levels       []LevelV1          `yaml:"levels,omitempty"`
	Decimals     *int               `yaml:"decimals,omitempty"`
}

// LevelV1 is one categorical level; Probability is omitted for uniform choices.
type LevelV1 struct {
	Value       string   `yaml:"value"`
	Probability *float64 `yaml:"probability,omitempty"`
}

// OutcomeV1 is the logistic model behind the outcome column.
type OutcomeV1 struct {
	Variable     string          `yaml:"variable"`
	Link         string          `yaml:"link"`
	Intercept    float64         `yaml:"intercept"`
	Coefficients []CoefficientV1 `yaml:"coefficients"`
}

// CoefficientV1 multiplies Term, either a column or an indicator such as
// "sex == male".
type CoefficientV1 struct {
	Term  string  `yaml:"term"`
	Value float64 `yaml:"value"`
}
