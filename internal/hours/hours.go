// Package hours converts user-facing hour representations, either
// "H:MM" or a plain decimal, into a canonical two-decimal value.
package hours

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidHours = errors.New("invalid hours value")

// Parse converts an hour string to a decimal number of hours.
//
// Input containing a colon is read as "H:MM": both parts must be
// non-negative integers and the minutes below 60. Anything else is
// parsed as a plain decimal number.
//
// Parse itself accepts negative plain decimals; rejecting them is the
// caller's responsibility, since whether negative hours make sense
// depends on the call site.
func Parse(input string) (float64, error) {
	s := strings.TrimSpace(input)

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		h, err := strconv.Atoi(parts[0])
		if err != nil || h < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHours, input)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 0 || m >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHours, input)
		}
		return Round2(float64(h) + float64(m)/60), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, input)
	}
	return Round2(v), nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
