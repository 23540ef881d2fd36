package texfmt

import (
	"strconv"
)

// DefaultPrecision is the percentage precision used by the cli
const DefaultPrecision = 1

// Percentage formats v (a fraction, 0.5 is 50%) as a percentage.
// With precision >= 1 the percentage has precision-1 decimals, so
// 0.573 with precision 1 is 57 and with precision 2 is 57.3.
// With precision 0, v is first rounded to a single significant digit,
// so 0.573 becomes 60.
// withSign appends an escaped percent sign: 57\%.
func Percentage(v float64, precision int, withSign bool) (string, error) {
	if precision < 0 {
		return "", invalidf("precision is %d, must be >= 0", precision)
	}
	var s string
	if precision == 0 {
		// 'g' with precision 0 means 1 significant digit
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 0, 64), 64)
		if err != nil {
			return "", err
		}
		s = strconv.FormatFloat(rounded*100, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v*100, 'f', precision-1, 64)
	}
	if withSign {
		s += `\%`
	}
	return s, nil
}
