package model

import (
	"encoding/json"
	"math"
)

// Number is a decoded numeric field. Malformed tokens decode to NaN rather
// than failing, so a Number may be NaN anywhere in a Document.
type Number float64

// NaN returns the Number used for tokens that are not numeric.
func NaN() Number {
	return Number(math.NaN())
}

// IsNaN reports whether n came from a malformed token.
func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// MarshalJSON writes NaN and infinities as null, which encoding/json would
// otherwise reject.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON reads null back as NaN.
func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NaN()
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Vec2 is a position in playfield coordinates.
type Vec2 struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}
