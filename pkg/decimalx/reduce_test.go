package decimalx_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/pkg/decimalx"
)

func dec(s string) decimalx.Extended {
	v, ok := decimalx.ParseString(s)
	if !ok {
		panic("bad literal: " + s)
	}

	return v
}

func TestReduce_Empty(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce(nil)
	assert.Equal(t, 0, r.Count)
	assert.True(t, r.Sum.IsFinite())

	sum, _ := r.Sum.Decimal()
	assert.True(t, sum.IsZero())
	assert.True(t, r.Mean.IsNull())
	assert.True(t, r.Median.IsNull())
	assert.True(t, r.StdDev.IsNull())
}

func TestReduce_DropsNulls(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{dec("1"), decimalx.Null(), dec("3")})
	assert.Equal(t, 2, r.Count)

	sum, _ := r.Sum.Decimal()
	assert.True(t, sum.Equal(decimal.NewFromInt(4)))
}

func TestReduce_NaNPropagates(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{dec("1"), dec("nan"), dec("2")})
	assert.True(t, r.Sum.IsNaN())
	assert.True(t, r.Mean.IsNaN())
	assert.True(t, r.StdDev.IsNaN())
}

func TestReduce_BothInfinitiesIsNaN(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{decimalx.PosInf(), decimalx.NegInf()})
	assert.True(t, r.Sum.IsNaN())
}

func TestReduce_OnlyPosInf(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{dec("5"), decimalx.PosInf()})
	assert.True(t, r.Sum.IsInf())
	assert.Equal(t, 1, r.Sum.Sign())
	assert.True(t, r.StdDev.IsInf())
}

func TestReduce_FiniteStatistics(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{dec("0.5"), dec("1.5"), dec("2.0")})
	require.Equal(t, 3, r.Count)

	sum, _ := r.Sum.Decimal()
	assert.True(t, sum.Equal(decimal.NewFromFloat(4.0)), "sum=%s", sum)

	median, _ := r.Median.Decimal()
	assert.True(t, median.Equal(decimal.NewFromFloat(1.5)), "median=%s", median)
}

func TestReduce_MedianEvenCount(t *testing.T) {
	t.Parallel()

	r := decimalx.Reduce([]decimalx.Extended{dec("1"), dec("2"), dec("3"), dec("4")})

	median, _ := r.Median.Decimal()
	assert.True(t, median.Equal(decimal.NewFromFloat(2.5)), "median=%s", median)
}

func TestReduce_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := decimalx.Reduce([]decimalx.Extended{dec("1"), dec("2"), dec("3"), dec("4")})
	b := decimalx.Reduce([]decimalx.Extended{dec("4"), dec("1"), dec("3"), dec("2")})

	sumA, _ := a.Sum.Decimal()
	sumB, _ := b.Sum.Decimal()
	assert.True(t, sumA.Equal(sumB))

	medA, _ := a.Median.Decimal()
	medB, _ := b.Median.Decimal()
	assert.True(t, medA.Equal(medB))
}

func TestReduce_StdDevPopulation(t *testing.T) {
	t.Parallel()

	// Values 2,4,4,4,5,5,7,9 have population stddev 2 (textbook example).
	values := []decimalx.Extended{
		dec("2"), dec("4"), dec("4"), dec("4"), dec("5"), dec("5"), dec("7"), dec("9"),
	}
	r := decimalx.Reduce(values)

	stddev, _ := r.StdDev.Decimal()
	diff := stddev.Sub(decimal.NewFromInt(2)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(1e-6)), "stddev=%s", stddev)
}

func TestParseString_Sentinels(t *testing.T) {
	t.Parallel()

	v, ok := decimalx.ParseString("NaN")
	require.True(t, ok)
	assert.True(t, v.IsNaN())

	v, ok = decimalx.ParseString("-inf")
	require.True(t, ok)
	assert.True(t, v.IsInf())
	assert.Equal(t, -1, v.Sign())

	_, ok = decimalx.ParseString("not-a-number-literal")
	assert.False(t, ok)
}
