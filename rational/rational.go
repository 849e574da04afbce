// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact rational number or a signed infinity.
//
// Invariants:
//   - inf ∈ {-1, 0, +1}; when inf != 0 the finite part is ignored.
//   - r is never mutated once stored; a nil r means 0.
type Rational struct {
	r   *big.Rat
	inf int8
}

var (
	// Zero is the additive identity.
	Zero = Rational{}
	// One is the multiplicative identity.
	One = FromInt(1)
	// PlusInfinity is greater than every finite value.
	PlusInfinity = Rational{inf: 1}
	// MinusInfinity is smaller than every finite value.
	MinusInfinity = Rational{inf: -1}
)

// New returns num/den. It panics with ErrIndeterminate when den == 0.
func New(num, den int64) Rational {
	if den == 0 {
		panic(ErrIndeterminate)
	}
	return Rational{r: big.NewRat(num, den)}
}

// FromInt returns the integer i as a Rational.
func FromInt(i int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(i)}
}

// FromBigInt returns the integer i as a Rational. i is copied.
func FromBigInt(i *big.Int) Rational {
	return Rational{r: new(big.Rat).SetInt(i)}
}

// FromBig returns a copy of r as a Rational. A nil r is 0.
func FromBig(r *big.Rat) Rational {
	if r == nil {
		return Zero
	}
	return Rational{r: new(big.Rat).Set(r)}
}

// Parse reads "3/4", "-2", "1.25", "+inf", "inf", "-Inf" (case-insensitive infinities).
func Parse(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "+inf", "inf", "+infinity", "infinity":
		return PlusInfinity, nil
	case "-inf", "-infinity":
		return MinusInfinity, nil
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return Rational{r: r}, nil
}

// MustParse is Parse that panics on malformed input. Meant for literals in tests and examples.
func MustParse(s string) Rational {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// rat returns the finite part; callers must have checked inf == 0.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Big returns a copy of the finite value, or nil for an infinity.
func (x Rational) Big() *big.Rat {
	if x.inf != 0 {
		return nil
	}
	return new(big.Rat).Set(x.rat())
}

// Num returns a copy of the numerator (0 for infinities).
func (x Rational) Num() *big.Int {
	if x.inf != 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the (positive) denominator (1 for infinities).
func (x Rational) Denom() *big.Int {
	if x.inf != 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Set(x.rat().Denom())
}

// Sign returns -1, 0 or +1. Infinities report their sign.
func (x Rational) Sign() int {
	if x.inf != 0 {
		return int(x.inf)
	}
	if x.r == nil {
		return 0
	}
	return x.r.Sign()
}

func (x Rational) IsZero() bool { return x.Sign() == 0 }
func (x Rational) IsPositive() bool { return x.Sign() > 0 }
func (x Rational) IsNegative() bool { return x.Sign() < 0 }
func (x Rational) IsFinite() bool { return x.inf == 0 }
func (x Rational) IsInfinite() bool { return x.inf != 0 }
func (x Rational) IsPlusInfinite() bool { return x.inf > 0 }
func (x Rational) IsMinusInfinite() bool { return x.inf < 0 }

// IsInteger reports whether x is a finite integer.
func (x Rational) IsInteger() bool {
	return x.inf == 0 && x.rat().IsInt()
}

// Cmp compares x and y and returns -1, 0 or +1.
// Infinities of the same sign compare equal.
func (x Rational) Cmp(y Rational) int {
	if x.inf != 0 || y.inf != 0 {
		switch {
		case x.inf == y.inf:
			return 0
		case x.inf < y.inf:
			return -1
		default:
			return 1
		}
	}
	return x.rat().Cmp(y.rat())
}

func (x Rational) Equal(y Rational) bool { return x.Cmp(y) == 0 }
func (x Rational) Less(y Rational) bool { return x.Cmp(y) < 0 }
func (x Rational) LessOrEqual(y Rational) bool { return x.Cmp(y) <= 0 }
func (x Rational) Greater(y Rational) bool { return x.Cmp(y) > 0 }
func (x Rational) GreaterOrEqual(y Rational) bool { return x.Cmp(y) >= 0 }

// Min returns the smallest argument.
func Min(first Rational, rest ...Rational) Rational {
	m := first
	for _, v := range rest {
		if v.Less(m) {
			m = v
		}
	}
	return m
}

// Max returns the largest argument.
func Max(first Rational, rest ...Rational) Rational {
	m := first
	for _, v := range rest {
		if v.Greater(m) {
			m = v
		}
	}
	return m
}

// String renders the canonical form: "3/4", "-2", "+Inf", "-Inf".
func (x Rational) String() string {
	switch {
	case x.inf > 0:
		return "+Inf"
	case x.inf < 0:
		return "-Inf"
	}
	return x.rat().RatString()
}

// Float64 returns the nearest float64. Display only; never feed it back into algorithms.
func (x Rational) Float64() float64 {
	if x.inf != 0 {
		if x.inf > 0 {
			return posInf
		}
		return negInf
	}
	f, _ := x.rat().Float64()
	return f
}
