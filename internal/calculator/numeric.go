package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept by divisions and by every
// step of a recursive average, so EMA and Wilder chains stay bounded.
const Scale int32 = 16

// sqrtScale is the working precision of the Newton iteration.
const sqrtScale int32 = 24

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	three   = decimal.NewFromInt(3)
	fifty   = decimal.NewFromInt(50)
	hundred = decimal.NewFromInt(100)
)

func div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, Scale)
}

func divInt(a decimal.Decimal, n int) decimal.Decimal {
	return a.DivRound(decimal.NewFromInt(int64(n)), Scale)
}

// Sqrt returns the square root of d rounded to Scale digits. Non-positive
// input yields zero.
func Sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	x := decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
	if x.Sign() <= 0 {
		x = d
	}
	for i := 0; i < 64; i++ {
		next := x.Add(d.DivRound(x, sqrtScale)).DivRound(two, sqrtScale)
		if next.Equal(x) {
			break
		}
		x = next
	}
	return x.Round(Scale)
}

// mean is the arithmetic mean of vs; vs must be non-empty.
func mean(vs []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return divInt(sum, len(vs))
}

// populationStdDev uses divisor len(vs), not len(vs)-1.
func populationStdDev(vs []decimal.Decimal, avg decimal.Decimal) decimal.Decimal {
	if len(vs) == 0 {
		return decimal.Zero
	}
	variance := decimal.Zero
	for _, v := range vs {
		diff := v.Sub(avg)
		variance = variance.Add(diff.Mul(diff))
	}
	return Sqrt(divInt(variance, len(vs)))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}
