// internal/randomstate/randomstate.go
package randomstate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"fb2nep/internal/mt19937"
)

const sumTolerance = 1.4901161193847656e-08

// ErrInvalidProbability reports a probability or weight vector outside its domain.
var ErrInvalidProbability = errors.New("invalid probability")

// State draws variates the way the legacy numpy RandomState does: MT19937
// words, 53-bit doubles, polar-method gaussians with one cached deviate.
// Products are wrapped in float64() where a fused multiply-add would change
// the stream. A State is not safe for concurrent use.
type State struct {
	mt       *mt19937.MT
	hasGauss bool
	gauss    float64
}

// New returns a State seeded with init_genrand(seed).
func New(seed uint32) *State {
	return &State{mt: mt19937.New(seed)}
}

// Seed resets the generator and drops any cached gaussian.
func (s *State) Seed(seed uint32) {
	s.mt.Seed(seed)
	s.hasGauss = false
	s.gauss = 0
}

// RandomSample returns a double in [0, 1).
func (s *State) RandomSample() float64 { return s.mt.Float64() }

// StandardNormal returns one N(0,1) deviate. The polar method yields two per
// accepted pair; the second is cached for the next call.
func (s *State) StandardNormal() float64 {
	if s.hasGauss {
		g := s.gauss
		s.hasGauss = false
		s.gauss = 0
		return g
	}
	var x1, x2, r2 float64
	for {
		x1 = 2.0*s.mt.Float64() - 1.0
		x2 = 2.0*s.mt.Float64() - 1.0
		r2 = float64(x1*x1) + float64(x2*x2)
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}
	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	s.gauss = f * x1
	s.hasGauss = true
	return f * x2
}

// Normal returns loc + scale*z.
func (s *State) Normal(loc, scale float64) float64 {
	return loc + float64(scale*s.StandardNormal())
}

// LogNormal returns exp(Normal(mean, sigma)); mean and sigma describe the
// underlying normal.
func (s *State) LogNormal(mean, sigma float64) float64 {
	return math.Exp(s.Normal(mean, sigma))
}

// Randint returns an integer in [low, high) using masked rejection on 32-bit
// words. Ranges wider than 2^32 are not supported.
func (s *State) Randint(low, high int64) (int64, error) {
	if high <= low {
		return 0, fmt.Errorf("randint: low >= high (%d >= %d)", low, high)
	}
	rng := uint64(high - low - 1)
	if rng == 0 {
		return low, nil
	}
	if rng > math.MaxUint32 {
		return 0, fmt.Errorf("randint: range %d exceeds 32 bits", rng+1)
	}
	if rng == math.MaxUint32 {
		return low + int64(s.mt.Uint32()), nil
	}
	mask := uint32(genMask(rng))
	for {
		v := s.mt.Uint32() & mask
		if uint64(v) <= rng {
			return low + int64(v), nil
		}
	}
}

func genMask(v uint64) uint64 {
	mask := v
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32
	return mask
}

// Choice returns a uniform index in [0, k).
func (s *State) Choice(k int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("choice: population must be non-empty, got %d", k)
	}
	v, err := s.Randint(0, int64(k))
	return int(v), err
}

// CDF is a normalized cumulative weight vector, ready for ChoiceCDF.
type CDF []float64

// NewCDF validates p and returns its cumulative sum divided by the total.
// Weights must be finite, non-negative and sum to 1 within sqrt(eps).
func NewCDF(p []float64) (CDF, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty weight vector", ErrInvalidProbability)
	}
	cdf := make(CDF, len(p))
	acc := 0.0
	for i, w := range p {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrInvalidProbability, i, w)
		}
		acc += w
		cdf[i] = acc
	}
	if math.Abs(acc-1.0) > sumTolerance {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidProbability, acc)
	}
	last := cdf[len(cdf)-1]
	for i := range cdf {
		cdf[i] /= last
	}
	return cdf, nil
}

// ChoiceCDF draws one index: the number of cdf entries <= u for a fresh
// uniform u (a right-side bisection).
func (s *State) ChoiceCDF(cdf CDF) int {
	u := s.RandomSample()
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
	if i >= len(cdf) {
		i = len(cdf) - 1
	}
	return i
}

// ChoiceP is NewCDF followed by ChoiceCDF.
func (s *State) ChoiceP(p []float64) (int, error) {
	cdf, err := NewCDF(p)
	if err != nil {
		return 0, err
	}
	return s.ChoiceCDF(cdf), nil
}

// Binomial draws from Binomial(n, p) by inversion. Only the small-mean regime
// n*min(p, 1-p) <= 30 is supported.
func (s *State) Binomial(n int64, p float64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("binomial: n < 0 (%d)", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: binomial p = %v", ErrInvalidProbability, p)
	}
	if n == 0 || p == 0 {
		return 0, nil
	}
	if p <= 0.5 {
		if p*float64(n) > 30 {
			return 0, fmt.Errorf("binomial: n*p = %v outside inversion range", p*float64(n))
		}
		return s.binomialInversion(n, p), nil
	}
	q := 1.0 - p
	if q*float64(n) > 30 {
		return 0, fmt.Errorf("binomial: n*(1-p) = %v outside inversion range", q*float64(n))
	}
	return n - s.binomialInversion(n, q), nil
}

// Bernoulli is Binomial(1, p).
func (s *State) Bernoulli(p float64) (int, error) {
	v, err := s.Binomial(1, p)
	return int(v), err
}

func (s *State) binomialInversion(n int64, p float64) int64 {
	q := 1.0 - p
	fn := float64(n)
	qn := math.Exp(fn * math.Log(q))
	np := fn * p
	bound := math.Min(fn, np+float64(10.0*math.Sqrt(float64(np*q)+1)))

	var x int64
	px := qn
	u := s.mt.Float64()
	for u > px {
		x++
		if float64(x) > bound {
			x = 0
			px = qn
			u = s.mt.Float64()
		} else {
			u -= px
			px = (float64(n-x+1) * p * px) / (float64(x) * q)
		}
	}
	return x
}
