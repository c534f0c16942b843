// Package quantity formats physical quantities as LaTeX math.
//
// Units come from gonum's unit package, so any gonum typed value
// (unit.Length, unit.Temperature, ...) can be formatted directly:
//
//	s, err := quantity.Format(quantity.Of(unit.Temperature(273.15)))
//	// $273.150\,\mathrm{K}$
package quantity

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// DefaultDigits is the number of digits printed after the decimal point.
const DefaultDigits = 3

// ScientificThreshold selects scientific notation automatically when every
// value's magnitude is below it.
const ScientificThreshold = 0.1

// ErrEmpty is returned when a quantity holds no values.
var ErrEmpty = errors.New("quantity has no values")

// Quantity is one or more values sharing a unit.
type Quantity struct {
	Values     []float64
	Dimensions unit.Dimensions
	// Symbol replaces the SI rendering of Dimensions when set, for units
	// outside the SI base set (e.g. "km/s", "erg"). It is printed in \mathrm.
	Symbol string
}

// Of wraps a single gonum value.
func Of(u unit.Uniter) Quantity {
	v := u.Unit()
	return Quantity{Values: []float64{v.Value()}, Dimensions: v.Dimensions()}
}

// Array builds a sequence quantity in the given SI dimensions.
func Array(dims unit.Dimensions, values ...float64) Quantity {
	return Quantity{Values: values, Dimensions: dims}
}

// Symbolic builds a quantity with a free-form unit symbol.
func Symbolic(symbol string, values ...float64) Quantity {
	return Quantity{Values: values, Symbol: symbol}
}

// Option configures Format.
type Option func(*options)

type options struct {
	scientific *bool
	digits     int
}

// WithScientific forces scientific notation on or off. Without it the
// notation is chosen from the values.
func WithScientific(enabled bool) Option {
	return func(o *options) {
		o.scientific = &enabled
	}
}

// WithDigits sets the digits after the decimal point in either notation.
// Negative values fall through to strconv and print the shortest form.
func WithDigits(n int) Option {
	return func(o *options) {
		o.digits = n
	}
}

// Format renders q as inline math, e.g. $1.000 \times 10^{-5}\,\mathrm{m}$.
// Sequences print as a parenthesised, comma separated list.
func Format(q Quantity, opts ...Option) (string, error) {
	if len(q.Values) == 0 {
		return "", ErrEmpty
	}

	o := &options{digits: DefaultDigits}
	for _, opt := range opts {
		opt(o)
	}

	sci := autoScientific(q.Values)
	if o.scientific != nil {
		sci = *o.scientific
	}

	parts := make([]string, len(q.Values))
	for i, v := range q.Values {
		parts[i] = formatValue(v, sci, o.digits)
	}

	var b strings.Builder
	b.WriteByte('$')
	if len(parts) == 1 {
		b.WriteString(parts[0])
	} else {
		b.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	if u := UnitMarkup(q); u != "" {
		b.WriteString(`\,`)
		b.WriteString(u)
	}
	b.WriteByte('$')
	return b.String(), nil
}

func autoScientific(values []float64) bool {
	for _, v := range values {
		if !(math.Abs(v) < ScientificThreshold) {
			return false
		}
	}
	return true
}

func formatValue(v float64, sci bool, digits int) string {
	switch {
	case math.IsNaN(v):
		return `\mathrm{NaN}`
	case math.IsInf(v, 1):
		return `\infty`
	case math.IsInf(v, -1):
		return `-\infty`
	}

	if !sci {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}

	s := strconv.FormatFloat(v, 'e', digits, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return fmt.Sprintf(`%s \times 10^{%d}`, mantissa, e)
}

// dimensionOrder is the conventional order of SI base units in a product.
var dimensionOrder = []unit.Dimension{
	unit.MassDim,
	unit.LengthDim,
	unit.TimeDim,
	unit.CurrentDim,
	unit.TemperatureDim,
	unit.MoleDim,
	unit.LuminousIntensityDim,
	unit.AngleDim,
}

// UnitMarkup renders the unit of q, e.g. \mathrm{kg\,m\,s^{-2}}.
// Dimensionless quantities return "".
func UnitMarkup(q Quantity) string {
	if q.Symbol != "" {
		return `\mathrm{` + q.Symbol + `}`
	}

	var terms []string
	for _, d := range orderedDimensions(q.Dimensions) {
		p := q.Dimensions[d]
		if p == 0 {
			continue
		}
		if p == 1 {
			terms = append(terms, d.String())
			continue
		}
		terms = append(terms, fmt.Sprintf("%s^{%d}", d, p))
	}
	if len(terms) == 0 {
		return ""
	}
	return `\mathrm{` + strings.Join(terms, `\,`) + `}`
}

// orderedDimensions lists the dimensions of dims with the SI base units first
// in conventional order, followed by any custom dimensions sorted by symbol.
func orderedDimensions(dims unit.Dimensions) []unit.Dimension {
	out := make([]unit.Dimension, 0, len(dims))
	for _, d := range dimensionOrder {
		if _, ok := dims[d]; ok {
			out = append(out, d)
		}
	}

	var custom []unit.Dimension
	for d := range dims {
		if !slices.Contains(dimensionOrder, d) {
			custom = append(custom, d)
		}
	}
	slices.SortFunc(custom, func(a, b unit.Dimension) int {
		return strings.Compare(a.String(), b.String())
	})
	return append(out, custom...)
}
