package generator

import (
	"github.com/viant/tasksetgen/model"
	"math"
)

// DerivePeriod returns the smallest positive integer n such that n × u is an
// integer, with u first rounded to 2 decimals.  The answer is the
// denominator of u written as a reduced fraction over 100.
func DerivePeriod(u float64) (int, error) {
	if math.IsNaN(u) || math.IsInf(u, 0) {
		return 0, model.InvalidInputf("utilization share must be a real number, got %v", u)
	}
	if u <= 0 {
		return 0, model.InvalidInputf("utilization share must be positive, got %v", u)
	}
	x := model.Round2(u)
	numerator := int(math.Round(x * scale))
	n := scale / gcd(numerator, scale)

	product := float64(n) * x
	if product != math.Trunc(product) && math.Abs(product-math.Round(product)) >= NumericTolerance {
		return 0, model.Numericf("unable to find an integer n such that n * %v is an integer", x)
	}
	return n, nil
}

// DerivePeriods maps every share to its period.
func DerivePeriods(shares []float64) ([]int, error) {
	ret := make([]int, len(shares))
	for i, share := range shares {
		period, err := DerivePeriod(share)
		if err != nil {
			return nil, err
		}
		ret[i] = period
	}
	return ret, nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
