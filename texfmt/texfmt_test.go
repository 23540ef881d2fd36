package texfmt

import (
	"errors"
	"math"
	"testing"

	"github.com/alecthomas/assert"
)

func TestScientific(t *testing.T) {
	tests := []struct {
		v       float64
		sigFigs int
		exp     string
	}{
		{123456000.0, 2, `1.2\times10^{8}`},
		{123456000.0, 1, `10^{8}`},
		{3.45, 1, `3`},
		{0.12, 2, `1.2\times10^{-1}`},
		{0.0067, 1, `7\times10^{-3}`},
		{5.5e70, 0, `10^{71}`},
		{5.5e30, 0, `10^{31}`},
		{1.2345e7, 2, `1.2\times10^{7}`},
		{321.5, 1, `3\times10^{2}`},
		{1.2345e7, 1, `10^{7}`},
		{1.0, 1, `1`},
		{1.0, 3, `1.00`},
		{10.0, 1, `10^{1}`},
		{5.23e10, 3, `5.23\times10^{10}`},
		{-4.2e-5, 2, `-4.2\times10^{-5}`},
		{0, 1, `0`},
		{42, 0, `10^{2}`},
		{3, 0, `10^{0}`},
	}
	for _, test := range tests {
		got, err := Scientific(test.v, test.sigFigs)
		assert.NoError(t, err)
		assert.Equal(t, test.exp, got, "Scientific(%v, %d)", test.v, test.sigFigs)
	}
}

func TestScientificInvalid(t *testing.T) {
	tests := []struct {
		v       float64
		sigFigs int
	}{
		{1, -1},
		{math.NaN(), 1},
		{math.Inf(1), 2},
		{math.Inf(-1), 0},
		{0, 0},
		{-5, 0},
	}
	for _, test := range tests {
		got, err := Scientific(test.v, test.sigFigs)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "Scientific(%v, %d) = '%s', %v", test.v, test.sigFigs, got, err)
		assert.Equal(t, "", got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		withSign  bool
		exp       string
	}{
		{0.573, 1, true, `57\%`},
		{0.573, 0, true, `60\%`},
		{0.573, 2, true, `57.3\%`},
		{0.573, 1, false, `57`},
		{0.573, 0, false, `60`},
		{0.5, 1, true, `50\%`},
		{1.0, 3, true, `100.00\%`},
		{0.04, 0, true, `4\%`},
		{0.00123, 3, false, `0.12`},
		{-0.25, 1, true, `-25\%`},
	}
	for _, test := range tests {
		got, err := Percentage(test.v, test.precision, test.withSign)
		assert.NoError(t, err)
		assert.Equal(t, test.exp, got, "Percentage(%v, %d, %v)", test.v, test.precision, test.withSign)
	}
}

func TestPercentageInvalid(t *testing.T) {
	got, err := Percentage(0.5, -1, true)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "", got)
}
