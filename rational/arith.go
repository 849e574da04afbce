// SPDX-License-Identifier: MIT

package rational

import (
	"math"
	"math/big"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Add returns x + y. It panics with ErrIndeterminate on (+∞) + (−∞).
func (x Rational) Add(y Rational) Rational {
	if x.inf != 0 || y.inf != 0 {
		if x.inf != 0 && y.inf != 0 && x.inf != y.inf {
			panic(ErrIndeterminate)
		}
		if x.inf != 0 {
			return x
		}
		return y
	}
	return Rational{r: new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x − y. It panics with ErrIndeterminate on ∞ − ∞ of the same sign.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Neg returns −x.
func (x Rational) Neg() Rational {
	if x.inf != 0 {
		return Rational{inf: -x.inf}
	}
	if x.IsZero() {
		return Zero
	}
	return Rational{r: new(big.Rat).Neg(x.rat())}
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Mul returns x · y, with 0·∞ = 0 and sign-aware infinite products.
func (x Rational) Mul(y Rational) Rational {
	if x.inf != 0 || y.inf != 0 {
		s := x.Sign() * y.Sign()
		switch {
		case s > 0:
			return PlusInfinity
		case s < 0:
			return MinusInfinity
		default:
			return Zero
		}
	}
	return Rational{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x / y. Finite / ∞ = 0; ∞ / finite keeps the sign of the quotient;
// ∞ / ∞ and x / 0 panic with ErrIndeterminate.
func (x Rational) Div(y Rational) Rational {
	if y.IsZero() {
		panic(ErrIndeterminate)
	}
	if y.inf != 0 {
		if x.inf != 0 {
			panic(ErrIndeterminate)
		}
		return Zero
	}
	if x.inf != 0 {
		if x.inf*int8(y.Sign()) > 0 {
			return PlusInfinity
		}
		return MinusInfinity
	}
	return Rational{r: new(big.Rat).Quo(x.rat(), y.rat())}
}

// Inverse returns 1/x; the inverse of an infinity is 0.
func (x Rational) Inverse() Rational {
	return One.Div(x)
}

// MulInt returns x · k.
func (x Rational) MulInt(k int64) Rational {
	return x.Mul(FromInt(k))
}

// DivInt returns x / k.
func (x Rational) DivInt(k int64) Rational {
	return x.Div(FromInt(k))
}
