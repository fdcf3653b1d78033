// Package weight implements the log-domain semiring used by every weighted
// language in this module.
//
// A Weight stores the natural logarithm of a non-negative real number:
//
//	Zero      ↔ log 0 = -Inf
//	One       ↔ log 1 = 0
//	a.Mul(b)  ↔ log(a·b) = log a + log b
//	a.Add(b)  ↔ log(a+b) computed with a max-shifted log-sum-exp
//
// Keeping weights as logarithms avoids underflow when weights span many
// orders of magnitude. Equality of Zero is exact; there is no epsilon
// tolerance at this layer.
package weight

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// ErrBadJSON indicates a JSON weight that is neither a number nor one of the
// infinity spellings produced by MarshalJSON.
var ErrBadJSON = errors.New("weight: malformed JSON weight")

const (
	jsonNegInf = "-Inf"
	jsonPosInf = "+Inf"
)

// Weight is a non-negative real number stored as its natural logarithm.
// The zero value of the struct is One (log value 0), not Zero.
type Weight struct {
	logValue float64
}

var (
	// Zero is the additive identity (log value -Inf).
	Zero = Weight{logValue: math.Inf(-1)}

	// One is the multiplicative identity (log value 0).
	One = Weight{logValue: 0}

	// Infinity is the absorbing element of unbounded sums (log value +Inf).
	Infinity = Weight{logValue: math.Inf(1)}
)

// FromLogValue wraps a log value.
func FromLogValue(logValue float64) Weight {
	return Weight{logValue: logValue}
}

// FromValue converts a linear value. Negative inputs produce a NaN log value;
// callers that accept user input validate the sign first.
func FromValue(value float64) Weight {
	if value == 0 {
		return Zero
	}
	return Weight{logValue: math.Log(value)}
}

// LogValue returns the natural logarithm of the weight.
func (w Weight) LogValue() float64 { return w.logValue }

// Value returns the weight in linear scale.
func (w Weight) Value() float64 { return math.Exp(w.logValue) }

// IsZero reports whether w is exactly Zero.
func (w Weight) IsZero() bool { return math.IsInf(w.logValue, -1) }

// IsOne reports whether w is exactly One.
func (w Weight) IsOne() bool { return w.logValue == 0 }

// IsInfinity reports whether w is +Inf.
func (w Weight) IsInfinity() bool { return math.IsInf(w.logValue, 1) }

// IsNaN reports whether w carries a NaN log value.
func (w Weight) IsNaN() bool { return math.IsNaN(w.logValue) }

// Mul returns w·other. Zero absorbs, so Zero·Infinity is Zero rather than NaN.
func (w Weight) Mul(other Weight) Weight {
	if w.IsZero() || other.IsZero() {
		return Zero
	}
	return Weight{logValue: w.logValue + other.logValue}
}

// Div returns w/other. Dividing by Zero yields Infinity unless w is Zero.
func (w Weight) Div(other Weight) Weight {
	if w.IsZero() {
		return Zero
	}
	if other.IsZero() {
		return Infinity
	}
	return Weight{logValue: w.logValue - other.logValue}
}

// Add returns w+other using a max-shifted log-sum-exp.
func (w Weight) Add(other Weight) Weight {
	a, b := w.logValue, other.logValue
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, 0) || math.IsInf(b, -1) {
		return Weight{logValue: a}
	}
	return Weight{logValue: a + math.Log1p(math.Exp(b-a))}
}

// Pow returns w raised to a real exponent.
func (w Weight) Pow(exponent float64) Weight {
	if exponent == 0 {
		return One
	}
	if w.IsZero() {
		return Zero
	}
	return Weight{logValue: w.logValue * exponent}
}

// Sum returns the semiring sum of ws; the empty sum is Zero.
func Sum(ws ...Weight) Weight {
	if len(ws) == 0 {
		return Zero
	}
	logs := make([]float64, len(ws))
	for i, w := range ws {
		logs[i] = w.logValue
	}
	return Weight{logValue: LogSumExp(logs)}
}

// Product returns the semiring product of ws; the empty product is One.
func Product(ws ...Weight) Weight {
	res := One
	for _, w := range ws {
		res = res.Mul(w)
	}
	return res
}

// LogSumExp returns log(Σ exp(v)) over logs, or -Inf for an empty slice.
func LogSumExp(logs []float64) float64 {
	if len(logs) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(logs)
}

// String renders the log value.
func (w Weight) String() string {
	return fmt.Sprintf("exp(%g)", w.logValue)
}

// MarshalJSON encodes the log value as a number; infinities become strings
// because JSON has no spelling for them.
func (w Weight) MarshalJSON() ([]byte, error) {
	switch {
	case w.IsZero():
		return json.Marshal(jsonNegInf)
	case w.IsInfinity():
		return json.Marshal(jsonPosInf)
	case w.IsNaN():
		return nil, fmt.Errorf("%w: NaN has no JSON form", ErrBadJSON)
	}
	return []byte(strconv.FormatFloat(w.logValue, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (w *Weight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case jsonNegInf:
			*w = Zero
		case jsonPosInf:
			*w = Infinity
		default:
			return fmt.Errorf("%w: %q", ErrBadJSON, s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	*w = Weight{logValue: f}
	return nil
}
