// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrIndeterminate is the panic value for ∞−∞, ∞/∞ and division by zero.
	ErrIndeterminate = errors.New("rational: indeterminate form")

	// ErrParse indicates a string that is neither a rational literal nor an infinity.
	ErrParse = errors.New("rational: cannot parse value")
)
