package codebook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fb2nep/internal/dataset"
)

func TestBuildCoversEveryColumn(t *testing.T) {
	cb := Build(dataset.DefaultParams(), dataset.DefaultModel, dataset.OutputFile)
	var names []string
	for _, v := range cb.Variables {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff(dataset.Columns, names); diff != "" {
		t.Fatalf("variables (-want +got):\n%s", diff)
	}
	if cb.Records != 1000 || cb.Seed != 11088 || cb.File != "fb2nep_data.csv" {
		t.Fatalf("header fields: %+v", cb)
	}
	if cb.Outcome.Intercept != -10 || len(cb.Outcome.Coefficients) != 8 {
		t.Fatalf("outcome: %+v", cb.Outcome)
	}
}

func TestBuildRecordsOutputPath(t *testing.T) {
	for _, file := range []string{"out/run1.csv.zst", "-"} {
		if got := Build(dataset.DefaultParams(), dataset.DefaultModel, file).File; got != file {
			t.Fatalf("file: want %q, got %q", file, got)
		}
	}
}

func TestLevelProbabilitiesSumToOne(t *testing.T) {
	cb := Build(dataset.DefaultParams(), dataset.DefaultModel, dataset.OutputFile)
	for _, v := range cb.Variables {
		if len(v.Levels) == 0 || v.Levels[0].Probability == nil {
			continue
		}
		sum := 0.0
		for _, l := range v.Levels {
			sum += *l.Probability
		}
		if sum < 1-1e-12 || sum > 1+1e-12 {
			t.Fatalf("%s: probabilities sum to %v", v.Name, sum)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	cb := Build(dataset.DefaultParams(), dataset.DefaultModel, dataset.OutputFile)
	var b bytes.Buffer
	if err := Write(&b, cb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "name: nutrient_intake\n") {
		t.Fatalf("unexpected yaml:\n%s", b.String())
	}
	got, err := Read(&b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cb, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestWriteDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	cb := Build(dataset.DefaultParams(), dataset.DefaultModel, dataset.OutputFile)
	if err := Write(&a, cb); err != nil {
		t.Fatal(err)
	}
	if err := Write(&b, cb); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("codebook output differs between runs")
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(strings.NewReader("variables: [unclosed")); err == nil {
		t.Fatalf("expected decode error")
	}
}
