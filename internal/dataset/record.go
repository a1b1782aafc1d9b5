// internal/dataset/record.go
package dataset

// Column names, in file order.
const (
	ColID               = "id"
	ColAge              = "age"
	ColSex              = "sex"
	ColBMI              = "BMI"
	ColSmokingStatus    = "smoking_status"
	ColPhysicalActivity = "physical_activity"
	ColNutrientIntake   = "nutrient_intake"
	ColSocialClass      = "social_class"
	ColRiskFactor1      = "risk_factor_1"
	ColRiskFactor2      = "risk_factor_2"
	ColDisease          = "disease"
)

// Columns lists every column name in file order.
var Columns = []string{
	ColID, ColAge, ColSex, ColBMI, ColSmokingStatus, ColPhysicalActivity,
	ColNutrientIntake, ColSocialClass, ColRiskFactor1, ColRiskFactor2, ColDisease,
}

// Record is one simulated participant.
type Record struct {
	ID               int
	Age              int
	Sex              string
	BMI              float64 // 1 dp
	SmokingStatus    string
	PhysicalActivity string
	NutrientIntake   float64 // 1 dp, > 0
	SocialClass      string
	RiskFactor1      int // 0|1
	RiskFactor2      int // 0|1
	Disease          int // 0|1
}

// Dataset is the ordered, write-once sequence of records; Records[i].ID == i+1.
type Dataset struct {
	Seed    uint32
	Records []Record
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.Records) }
