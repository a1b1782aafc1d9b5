package randomstate

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStandardNormalGolden(t *testing.T) {
	want := []float64{0.1607179982532954, 1.7729741735920534, -1.2784788671993734, -0.5554090563702064}
	s := New(11088)
	got := make([]float64, len(want))
	for i := range got {
		got[i] = s.StandardNormal()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("gaussian stream mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalAndLogNormalGolden(t *testing.T) {
	s := New(11088)
	got := []float64{s.Normal(55, 10), s.Normal(55, 10), s.Normal(55, 10)}
	want := []float64{56.607179982532955, 72.72974173592053, 42.21521132800626}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("normal %d: want %v, got %v", i, want[i], got[i])
		}
	}

	s = New(11088)
	wantLN := []float64{21.673520732034746, 48.531805200727035, 10.553872349834087}
	for i, w := range wantLN {
		if g := s.LogNormal(math.Log(20), 0.5); math.Abs(g-w) > 1e-10 {
			t.Fatalf("lognormal %d: want %v, got %v", i, w, g)
		}
	}
}

func TestSeedDropsCachedGaussian(t *testing.T) {
	s := New(11088)
	first := s.StandardNormal()
	s.Seed(11088)
	if got := s.StandardNormal(); got != first {
		t.Fatalf("after reseed: want %v, got %v", first, got)
	}
}

func TestRandintGolden(t *testing.T) {
	s := New(11088)
	var coin []int64
	for i := 0; i < 8; i++ {
		v, err := s.Randint(0, 2)
		if err != nil {
			t.Fatal(err)
		}
		coin = append(coin, v)
	}
	var die []int64
	for i := 0; i < 4; i++ {
		v, err := s.Randint(0, 6)
		if err != nil {
			t.Fatal(err)
		}
		die = append(die, v)
	}
	if diff := cmp.Diff([]int64{1, 0, 1, 0, 0, 0, 1, 0}, coin); diff != "" {
		t.Fatalf("coin (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{3, 3, 0, 4}, die); diff != "" {
		t.Fatalf("die (-want +got):\n%s", diff)
	}
}

func TestRandintErrorsAndDegenerate(t *testing.T) {
	s := New(1)
	if _, err := s.Randint(3, 3); err == nil {
		t.Fatalf("expected error on empty range")
	}
	if _, err := s.Randint(0, 1<<33); err == nil {
		t.Fatalf("expected error on >32-bit range")
	}
	v, err := s.Randint(7, 8)
	if err != nil || v != 7 {
		t.Fatalf("single-value range: got %d, %v", v, err)
	}
	if _, err := s.Choice(0); err == nil {
		t.Fatalf("expected error on empty population")
	}
}

func TestChoicePGolden(t *testing.T) {
	s := New(11088)
	want := []int{0, 0, 2, 2, 0, 1, 0, 2, 1, 1}
	var got []int
	for range want {
		i, err := s.ChoiceP([]float64{0.5, 0.3, 0.2})
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, i)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("choice (-want +got):\n%s", diff)
	}
}

func TestChoicePFrequencies(t *testing.T) {
	s := New(7)
	cdf, err := NewCDF([]float64{0.6, 0.4})
	if err != nil {
		t.Fatal(err)
	}
	const n = 100000
	ones := 0
	for i := 0; i < n; i++ {
		ones += s.ChoiceCDF(cdf)
	}
	if f := float64(ones) / n; math.Abs(f-0.4) > 0.01 {
		t.Fatalf("frequency of index 1: want ~0.4, got %v", f)
	}
}

func TestNewCDFValidation(t *testing.T) {
	cases := map[string][]float64{
		"empty":    nil,
		"negative": {1.2, -0.2},
		"nan":      {math.NaN(), 1},
		"sum":      {0.5, 0.4},
	}
	for name, p := range cases {
		if _, err := NewCDF(p); !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("%s: want ErrInvalidProbability, got %v", name, err)
		}
	}
	cdf, err := NewCDF([]float64{0.5, 0.3, 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if cdf[len(cdf)-1] != 1 {
		t.Fatalf("last cdf entry must be 1, got %v", cdf[len(cdf)-1])
	}
}

func TestBinomialGolden(t *testing.T) {
	s := New(11088)
	var bern []int64
	for i := 0; i < 10; i++ {
		v, err := s.Binomial(1, 0.3)
		if err != nil {
			t.Fatal(err)
		}
		bern = append(bern, v)
	}
	var hi []int64
	for i := 0; i < 5; i++ {
		v, err := s.Binomial(10, 0.9)
		if err != nil {
			t.Fatal(err)
		}
		hi = append(hi, v)
	}
	if diff := cmp.Diff([]int64{0, 0, 1, 1, 0, 0, 0, 1, 1, 0}, bern); diff != "" {
		t.Fatalf("bernoulli (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{8, 10, 9, 10, 9}, hi); diff != "" {
		t.Fatalf("binomial(10, 0.9) (-want +got):\n%s", diff)
	}
}

func TestBinomialEdges(t *testing.T) {
	s := New(3)
	if v, err := s.Binomial(5, 0); err != nil || v != 0 {
		t.Fatalf("p=0: got %d, %v", v, err)
	}
	if v, err := s.Binomial(5, 1); err != nil || v != 5 {
		t.Fatalf("p=1: got %d, %v", v, err)
	}
	if v, err := s.Binomial(0, 0.4); err != nil || v != 0 {
		t.Fatalf("n=0: got %d, %v", v, err)
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := s.Bernoulli(p); !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("p=%v: want ErrInvalidProbability, got %v", p, err)
		}
	}
	if _, err := s.Binomial(1000, 0.5); err == nil {
		t.Fatalf("expected error outside inversion range")
	}
}

func TestBernoulliMean(t *testing.T) {
	s := New(11088)
	const n = 50000
	sum := 0
	for i := 0; i < n; i++ {
		v, err := s.Bernoulli(0.2)
		if err != nil {
			t.Fatal(err)
		}
		sum += v
	}
	if f := float64(sum) / n; math.Abs(f-0.2) > 0.01 {
		t.Fatalf("bernoulli mean: want ~0.2, got %v", f)
	}
}

func TestRoundDecimals(t *testing.T) {
	cases := []struct {
		in   float64
		d    int
		want float64
	}{
		{2.5, 0, 2},
		{3.5, 0, 4},
		{-0.5, 0, 0},
		{27.25, 1, 27.2},
		{27.35, 1, 27.4},
		{19.94, 1, 19.9},
		{54.6, 0, 55},
	}
	for _, c := range cases {
		if got := RoundDecimals(c.in, c.d); got != c.want {
			t.Fatalf("RoundDecimals(%v, %d): want %v, got %v", c.in, c.d, c.want, got)
		}
	}
}
