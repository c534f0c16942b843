package quantity

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

var baseSymbols = map[string]unit.Dimension{
	"kg":  unit.MassDim,
	"m":   unit.LengthDim,
	"s":   unit.TimeDim,
	"A":   unit.CurrentDim,
	"K":   unit.TemperatureDim,
	"mol": unit.MoleDim,
	"cd":  unit.LuminousIntensityDim,
	"rad": unit.AngleDim,
}

// ParseUnit reads a product of SI base symbols with optional integer powers,
// e.g. "kg m^2 s^-2" or "m/s". Terms after a '/' are inverted.
func ParseUnit(s string) (unit.Dimensions, error) {
	dims := make(unit.Dimensions)
	numerator, denominator, _ := strings.Cut(s, "/")

	if err := addTerms(dims, numerator, 1); err != nil {
		return nil, err
	}
	if err := addTerms(dims, denominator, -1); err != nil {
		return nil, err
	}
	for d, p := range dims {
		if p == 0 {
			delete(dims, d)
		}
	}
	return dims, nil
}

func addTerms(dims unit.Dimensions, s string, sign int) error {
	for _, term := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '*' || r == '.' }) {
		sym, pow := term, 1
		if base, exp, ok := strings.Cut(term, "^"); ok {
			p, err := strconv.Atoi(strings.Trim(exp, "{}"))
			if err != nil {
				return fmt.Errorf("invalid power in %q: %w", term, err)
			}
			sym, pow = base, p
		}
		d, ok := baseSymbols[sym]
		if !ok {
			return fmt.Errorf("unknown unit symbol %q", sym)
		}
		dims[d] += sign * pow
	}
	return nil
}
