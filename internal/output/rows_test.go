package output

import (
	"math"
	"testing"

	"fb2nep/internal/dataset"
)

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{27, "27.0"},
		{21.5, "21.5"},
		{0.1, "0.1"},
		{123.4, "123.4"},
		{math.Copysign(0, -1), "-0.0"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		if got := FormatDecimal(c.in); got != c.want {
			t.Fatalf("FormatDecimal(%v): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatRow(t *testing.T) {
	r := dataset.Record{
		ID: 2, Age: 73, Sex: "male", BMI: 20.3, SmokingStatus: "never", PhysicalActivity: "active",
		NutrientIntake: 18.2, SocialClass: "ABC1", RiskFactor1: 1, RiskFactor2: 1, Disease: 0,
	}
	want := "2,73,male,20.3,never,active,18.2,ABC1,1,1,0"
	if got := FormatRow(r); got != want {
		t.Fatalf("row:\nwant %q\ngot  %q", want, got)
	}
}

func TestHeaderStable(t *testing.T) {
	want := "id,age,sex,BMI,smoking_status,physical_activity,nutrient_intake,social_class,risk_factor_1,risk_factor_2,disease"
	if Header != want {
		t.Fatalf("header changed:\nwant %q\ngot  %q", want, Header)
	}
}
