// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON schema for --summary json.
// Keep fields, names, and types stable. Non-finite statistics are null.
type SummaryV1 struct {
	Dataset         string          `json:"dataset"`
	Seed            uint32          `json:"seed"`
	N               int             `json:"n"`
	Numeric         []NumericV1     `json:"numeric"`
	Categorical     []CategoricalV1 `json:"categorical"`
	Binary          []BinaryV1      `json:"binary"`
	MeanProbability *float64        `json:"mean_probability"`
}

// NumericV1 describes one numeric column. Quartiles are t-digest estimates.
type NumericV1 struct {
	Name   string   `json:"name"`
	N      int      `json:"n"`
	Mean   *float64 `json:"mean"`
	SD     *float64 `json:"sd"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	Median *float64 `json:"median"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

// CategoricalV1 lists level counts in codebook order, zero counts included.
type CategoricalV1 struct {
	Name   string         `json:"name"`
	Levels []LevelCountV1 `json:"levels"`
}

type LevelCountV1 struct {
	Value      string   `json:"value"`
	Count      int      `json:"count"`
	Proportion *float64 `json:"proportion"`
}

// BinaryV1 is a 0/1 column.
type BinaryV1 struct {
	Name       string   `json:"name"`
	Ones       int      `json:"ones"`
	Prevalence *float64 `json:"prevalence"`
}
