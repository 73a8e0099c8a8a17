package report

import (
	"fmt"
	"math"
)

// Rounding selects how ties are broken when rounding to one decimal.
type Rounding int

const (
	// HalfAwayFromZero rounds ties away from zero: -6.65 becomes -6.7.
	HalfAwayFromZero Rounding = iota
	// HalfUp rounds ties towards positive infinity like java's Math.round:
	// -6.65 becomes -6.6.
	HalfUp
)

// ParseRounding maps "away" and "java" to a Rounding.
func ParseRounding(name string) (Rounding, error) {
	switch name {
	case "away", "":
		return HalfAwayFromZero, nil
	case "java":
		return HalfUp, nil
	}
	return 0, fmt.Errorf("unknown rounding %q, want away or java", name)
}

func (r Rounding) String() string {
	if r == HalfUp {
		return "java"
	}
	return "away"
}

// Round rounds x to one decimal place. Negative zero comes back as zero.
func (r Rounding) Round(x float64) float64 {
	var t float64
	if r == HalfUp {
		t = roundJava(x * 10.0)
	} else {
		t = math.Round(x * 10.0)
	}
	if t == 0 { // check -0
		return 0.0
	}
	return t / 10.0
}

// roundJava returns the closest integer to the argument, with ties
// rounding to positive infinity, see java's Math.round
func roundJava(x float64) float64 {
	t := math.Trunc(x)
	if x < 0.0 && t-x == 0.5 {
		// ties go up, which for negatives is towards zero
	} else if math.Abs(x-t) >= 0.5 {
		t += math.Copysign(1, x)
	}

	if t == 0 { // check -0
		return 0.0
	}
	return t
}
