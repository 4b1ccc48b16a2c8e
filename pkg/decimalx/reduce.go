package decimalx

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Reduced is the result of folding a list of Extended values: the finite
// sum/mean/stdev/median, or one of the sentinel propagation rules below
// when the inputs contain NaN or infinities.
type Reduced struct {
	Sum    Extended
	Mean   Extended
	Median Extended
	StdDev Extended
	Count  int
}

// Reduce folds values according to extended-real rules:
//   - nulls are dropped before anything else;
//   - if any remaining value is NaN, every result field is NaN;
//   - if both +Inf and -Inf are present, every result field is NaN;
//   - if only one signed infinity is present, sum/mean/stdev all equal it;
//   - otherwise every field is the exact decimal statistic over the finite
//     values, with stdev as the *population* standard deviation (÷n).
//
// Reduce(nil) returns Count: 0, Sum: zero, and every other field Null.
func Reduce(values []Extended) Reduced {
	finite := make([]decimal.Decimal, 0, len(values))

	sawPosInf, sawNegInf, sawNaN := false, false, false
	count := 0

	for _, v := range values {
		switch {
		case v.IsNull():
			continue
		case v.IsNaN():
			sawNaN = true
			count++
		case v.IsInf():
			count++

			if v.neg {
				sawNegInf = true
			} else {
				sawPosInf = true
			}
		case v.IsFinite():
			d, _ := v.Decimal()
			finite = append(finite, d)
			count++
		}
	}

	switch {
	case sawNaN:
		return Reduced{Sum: NaN(), Mean: NaN(), Median: NaN(), StdDev: NaN(), Count: count}
	case sawPosInf && sawNegInf:
		return Reduced{Sum: NaN(), Mean: NaN(), Median: NaN(), StdDev: NaN(), Count: count}
	case sawPosInf:
		return Reduced{Sum: PosInf(), Mean: PosInf(), Median: PosInf(), StdDev: PosInf(), Count: count}
	case sawNegInf:
		return Reduced{Sum: NegInf(), Mean: NegInf(), Median: NegInf(), StdDev: NegInf(), Count: count}
	}

	if count == 0 {
		return Reduced{Sum: FromDecimal(decimal.Zero), Mean: Null(), Median: Null(), StdDev: Null(), Count: 0}
	}

	return reduceFinite(finite)
}

func reduceFinite(values []decimal.Decimal) Reduced {
	sum := decimal.Sum(values[0], values[1:]...)
	n := decimal.NewFromInt(int64(len(values)))
	mean := sum.Div(n)

	var sumSq decimal.Decimal

	for _, v := range values {
		diff := v.Sub(mean)
		sumSq = sumSq.Add(diff.Mul(diff))
	}

	variance := sumSq.Div(n)
	stddev := decimalSqrt(variance)

	return Reduced{
		Sum:    FromDecimal(sum),
		Mean:   FromDecimal(mean),
		Median: FromDecimal(median(values)),
		StdDev: FromDecimal(stddev),
		Count:  len(values),
	}
}

func median(values []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// decimalSqrt computes a square root to decimal precision via Newton's
// method; decimal.Decimal has no native Sqrt. Converging from a float64
// seed is safe here because stdev inputs are bounded benchmark metrics, not
// values needing more than float64's ~15 significant digits of seed
// precision — refinement below recovers full decimal precision.
func decimalSqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}

	seed, _ := d.Float64()
	if seed <= 0 {
		return decimal.Zero
	}

	x := decimal.NewFromFloat(seed).Div(decimal.NewFromInt(2))
	two := decimal.NewFromInt(2)

	const iterations = 30

	for range iterations {
		if x.IsZero() {
			break
		}

		x = x.Add(d.Div(x)).Div(two)
	}

	return x
}
