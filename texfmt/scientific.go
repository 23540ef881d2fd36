package texfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned for arguments that can't be formatted
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultSigFigs is the number of significant figures used by the cli
	DefaultSigFigs = 1

	timesTen = `\times10^`
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func powerOfTen(exp int) string {
	return "10^{" + strconv.Itoa(exp) + "}"
}

// Scientific formats v as <digits>\times10^{<exp>} with sigFigs
// significant figures.
// sigFigs == 0 only keeps the nearest power of 10: 5.5e70 => 10^{71}.
// A mantissa of exactly 1 is dropped (10^{8}) and so is a 0 exponent (3).
func Scientific(v float64, sigFigs int) (string, error) {
	if sigFigs < 0 {
		return "", invalidf("sigFigs is %d, must be >= 0", sigFigs)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", invalidf("can't format %v", v)
	}
	if sigFigs == 0 {
		if v <= 0 {
			return "", invalidf("can't take log10 of %v", v)
		}
		exp := math.RoundToEven(math.Log10(v))
		return powerOfTen(int(exp)), nil
	}

	// mantissa is rounded to 6 decimals first and only then to sigFigs
	s := strconv.FormatFloat(v, 'e', 6, 64)
	mantissa, expStr, ok := strings.Cut(s, "e")
	if !ok {
		return "", invalidf("unexpected formatting of %v: '%s'", v, s)
	}
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return "", err
	}
	m, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return "", err
	}
	digits := strconv.FormatFloat(m, 'f', sigFigs-1, 64)

	if exp == 0 {
		return digits, nil
	}
	if digits == "1" {
		return powerOfTen(exp), nil
	}
	return digits + timesTen + "{" + strconv.Itoa(exp) + "}", nil
}
