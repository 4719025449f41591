package domain

import (
	"math/big"
	"strconv"
	"strings"
)

// Money is an immutable amount in MXN backed by big.Rat, so percentage
// discounts never pick up float error before the final rounding.
type Money struct {
	amount *big.Rat
}

// FromPesos builds Money from a whole-peso amount.
func FromPesos(pesos int64) *Money {
	return &Money{amount: big.NewRat(pesos, 1)}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: new(big.Rat).Sub(m.amount, other.amount)}
}

// Times multiplies by a whole quantity.
func (m *Money) Times(qty int64) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, big.NewRat(qty, 1))}
}

// MultiplyByDecimal multiplies by a fraction such as a coupon's 0.10.
func (m *Money) MultiplyByDecimal(decimal float64) *Money {
	multiplier := new(big.Rat).SetFloat64(decimal)
	if multiplier == nil {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Mul(m.amount, multiplier)}
}

// MultiplyByFraction multiplies by numerator/denominator exactly.
func (m *Money) MultiplyByFraction(numerator, denominator int64) *Money {
	if denominator == 0 {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Mul(m.amount, big.NewRat(numerator, denominator))}
}

func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

func (m *Money) LessThan(other *Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

// Round returns the amount rounded half away from zero to whole pesos.
func (m *Money) Round() int64 {
	abs := new(big.Rat).Abs(m.amount)
	abs.Add(abs, big.NewRat(1, 2))
	q := new(big.Int).Quo(abs.Num(), abs.Denom())
	if m.amount.Sign() < 0 {
		q.Neg(q)
	}
	return q.Int64()
}

// FormatMXN renders a whole-peso amount as "$1,299".
func FormatMXN(pesos int64) string {
	neg := pesos < 0
	if neg {
		pesos = -pesos
	}
	digits := strconv.FormatInt(pesos, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
