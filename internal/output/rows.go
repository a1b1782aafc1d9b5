// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"fb2nep/internal/dataset"
)

// AppendDecimal appends v in its shortest round-trip form, always with a
// fractional part (27 -> "27.0"), the way float columns print in CSV.
func AppendDecimal(dst []byte, v float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' || c == 'N' || c == 'I' {
			return dst
		}
	}
	return append(dst, '.', '0')
}

// FormatDecimal is AppendDecimal into a new string.
func FormatDecimal(v float64) string {
	return string(AppendDecimal(nil, v))
}

// AppendRow appends one CSV row for r, terminated by '\n'.
func AppendRow(dst []byte, r dataset.Record) []byte {
	dst = strconv.AppendInt(dst, int64(r.ID), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(r.Age), 10)
	dst = append(dst, ',')
	dst = append(dst, r.Sex...)
	dst = append(dst, ',')
	dst = AppendDecimal(dst, r.BMI)
	dst = append(dst, ',')
	dst = append(dst, r.SmokingStatus...)
	dst = append(dst, ',')
	dst = append(dst, r.PhysicalActivity...)
	dst = append(dst, ',')
	dst = AppendDecimal(dst, r.NutrientIntake)
	dst = append(dst, ',')
	dst = append(dst, r.SocialClass...)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(r.RiskFactor1), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(r.RiskFactor2), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(r.Disease), 10)
	return append(dst, '\n')
}

// FormatRow returns the CSV row for r without the trailing newline.
func FormatRow(r dataset.Record) string {
	return strings.TrimSuffix(string(AppendRow(nil, r)), "\n")
}
