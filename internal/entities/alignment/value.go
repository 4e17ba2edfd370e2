// Package alignment models a character's position on the law/chaos and
// good/evil axes, and the append-only ledger of changes to it.
package alignment

import "fmt"

const (
	// MinValue is the lowest value on either axis
	MinValue = 0
	// MaxValue is the highest value on either axis
	MaxValue = 44
	// GridSteps is the number of distinct values per axis
	GridSteps = MaxValue - MinValue + 1

	// Upper bounds of the lower and middle thirds of an axis
	lowBandMax = 14
	midBandMax = 29

	// UnknownLabel is returned when classifying a value outside the axis
	UnknownLabel = "?"
)

// Law axis labels
const (
	LawChaotic = "chaotic"
	LawNeutral = "neutral"
	LawLawful  = "lawful"
)

// Moral axis labels
const (
	MoralEvil    = "evil"
	MoralNeutral = "neutral"
	MoralGood    = "good"
)

// Value is a point on the alignment grid.
type Value struct {
	Law   int `json:"law"`
	Moral int `json:"moral"`
}

// Clamp limits v to [MinValue, MaxValue].
func Clamp(v int) int {
	return max(MinValue, min(MaxValue, v))
}

// Shift moves v by delta and clamps the result. The delta is bounded to one
// full axis first so the addition cannot overflow.
func Shift(v, delta int) int {
	delta = max(-GridSteps, min(GridSteps, delta))
	return Clamp(Clamp(v) + delta)
}

// ClassifyLaw maps a law value to its label.
func ClassifyLaw(v int) string {
	switch {
	case v < MinValue || v > MaxValue:
		return UnknownLabel
	case v <= lowBandMax:
		return LawChaotic
	case v <= midBandMax:
		return LawNeutral
	default:
		return LawLawful
	}
}

// ClassifyMoral maps a moral value to its label.
func ClassifyMoral(v int) string {
	switch {
	case v < MinValue || v > MaxValue:
		return UnknownLabel
	case v <= lowBandMax:
		return MoralEvil
	case v <= midBandMax:
		return MoralNeutral
	default:
		return MoralGood
	}
}

// Abbreviate returns the two letter code for a position, e.g. "LG" or "CN".
// True neutral is "NN". Inputs are clamped first.
func Abbreviate(law, moral int) string {
	law, moral = Clamp(law), Clamp(moral)

	lawChar := 'N'
	switch {
	case law > midBandMax:
		lawChar = 'L'
	case law <= lowBandMax:
		lawChar = 'C'
	}

	moralChar := 'N'
	switch {
	case moral > midBandMax:
		moralChar = 'G'
	case moral <= lowBandMax:
		moralChar = 'E'
	}

	return string([]rune{lawChar, moralChar})
}

// Clamped returns v with both axes clamped.
func (v Value) Clamped() Value {
	return Value{Law: Clamp(v.Law), Moral: Clamp(v.Moral)}
}

// LawLabel returns the law axis label of the clamped value.
func (v Value) LawLabel() string {
	return ClassifyLaw(Clamp(v.Law))
}

// MoralLabel returns the moral axis label of the clamped value.
func (v Value) MoralLabel() string {
	return ClassifyMoral(Clamp(v.Moral))
}

// Labels renders "(<law> <moral>)", the suffix used by tooltips and legends.
func (v Value) Labels() string {
	return fmt.Sprintf("(%s %s)", v.LawLabel(), v.MoralLabel())
}

// Abbreviation returns the two letter code of v.
func (v Value) Abbreviation() string {
	return Abbreviate(v.Law, v.Moral)
}
