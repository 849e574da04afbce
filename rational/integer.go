// SPDX-License-Identifier: MIT

package rational

import "math/big"

// Floor returns ⌊x⌋. Infinities are returned unchanged.
// Exact: uses Euclidean division of numerator by the positive denominator.
func (x Rational) Floor() Rational {
	if x.inf != 0 {
		return x
	}
	q := new(big.Int).Div(x.rat().Num(), x.rat().Denom())
	return Rational{r: new(big.Rat).SetInt(q)}
}

// Ceil returns ⌈x⌉. Infinities are returned unchanged.
func (x Rational) Ceil() Rational {
	if x.inf != 0 {
		return x
	}
	return x.Neg().Floor().Neg()
}

// FloorInt64 returns ⌊x⌋ as int64. It panics with ErrIndeterminate on infinities.
func (x Rational) FloorInt64() int64 {
	if x.inf != 0 {
		panic(ErrIndeterminate)
	}
	return x.Floor().rat().Num().Int64()
}

// CeilInt64 returns ⌈x⌉ as int64. It panics with ErrIndeterminate on infinities.
func (x Rational) CeilInt64() int64 {
	if x.inf != 0 {
		panic(ErrIndeterminate)
	}
	return x.Ceil().rat().Num().Int64()
}

// GCD returns the greatest rational g such that x/g and y/g are both integers:
// gcd(p1/q1, p2/q2) = gcd(p1, p2) / lcm(q1, q2). Both inputs must be finite.
// GCD(0, y) = |y|.
func GCD(x, y Rational) Rational {
	if x.inf != 0 || y.inf != 0 {
		panic(ErrIndeterminate)
	}
	if x.IsZero() {
		return y.Abs()
	}
	if y.IsZero() {
		return x.Abs()
	}
	p1, q1 := new(big.Int).Abs(x.rat().Num()), x.rat().Denom()
	p2, q2 := new(big.Int).Abs(y.rat().Num()), y.rat().Denom()
	num := new(big.Int).GCD(nil, nil, p1, p2)
	den := lcmInt(q1, q2)
	return Rational{r: new(big.Rat).SetFrac(num, den)}
}

// LCM returns the smallest positive rational that is an integer multiple of
// both |x| and |y|: lcm(p1/q1, p2/q2) = lcm(p1, p2) / gcd(q1, q2).
// Both inputs must be finite and non-zero.
func LCM(x, y Rational) Rational {
	if x.inf != 0 || y.inf != 0 || x.IsZero() || y.IsZero() {
		panic(ErrIndeterminate)
	}
	p1, q1 := new(big.Int).Abs(x.rat().Num()), x.rat().Denom()
	p2, q2 := new(big.Int).Abs(y.rat().Num()), y.rat().Denom()
	num := lcmInt(p1, p2)
	den := new(big.Int).GCD(nil, nil, q1, q2)
	return Rational{r: new(big.Rat).SetFrac(num, den)}
}

// lcmInt returns lcm(a, b) for positive a, b.
func lcmInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)
	return l.Mul(l, b)
}
