package fintrack

import (
	"fmt"
	"math"
)

// compoundingPeriods is the number of compounding periods per year (monthly).
const compoundingPeriods = 12

// CompoundInterest returns the final amount of principal compounded monthly
// at the given annual rate (in percent) over the given number of years:
// A = P(1 + r/n)^(nt). All inputs must be positive.
func CompoundInterest(principal, annualRatePct, years float64) (float64, error) {
	if principal <= 0 || annualRatePct <= 0 || years <= 0 {
		return 0, fmt.Errorf("principal, rate and years must all be positive")
	}
	r := annualRatePct / 100
	n := float64(compoundingPeriods)
	return principal * math.Pow(1+r/n, n*years), nil
}
