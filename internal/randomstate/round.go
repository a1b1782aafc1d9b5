package randomstate

import "math"

// RoundDecimals rounds x to d decimal places as rint(x*10^d)/10^d, ties to
// even. d = 0 is plain rint.
func RoundDecimals(x float64, d int) float64 {
	if d == 0 {
		return math.RoundToEven(x)
	}
	f := math.Pow(10, float64(d))
	return math.RoundToEven(x*f) / f
}
