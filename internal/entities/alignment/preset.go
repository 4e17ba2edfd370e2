package alignment

import "fmt"

// PresetWarning must be shown before a preset is applied; presets wipe the
// history.
const PresetWarning = "This action will reset any alignment history you have!"

// Axis anchor values used by presets
const (
	presetHigh = 37
	presetMid  = 22
	presetLow  = 7
)

// Preset is a named starting alignment.
type Preset struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

var presets = []Preset{
	{Name: "Lawful Good", Value: Value{Law: presetHigh, Moral: presetHigh}},
	{Name: "Lawful Neutral", Value: Value{Law: presetHigh, Moral: presetMid}},
	{Name: "Lawful Evil", Value: Value{Law: presetHigh, Moral: presetLow}},
	{Name: "Neutral Good", Value: Value{Law: presetMid, Moral: presetHigh}},
	{Name: "Neutral Neutral", Value: Value{Law: presetMid, Moral: presetMid}},
	{Name: "Neutral Evil", Value: Value{Law: presetMid, Moral: presetLow}},
	{Name: "Chaotic Good", Value: Value{Law: presetLow, Moral: presetHigh}},
	{Name: "Chaotic Neutral", Value: Value{Law: presetLow, Moral: presetMid}},
	{Name: "Chaotic Evil", Value: Value{Law: presetLow, Moral: presetLow}},
}

// Presets returns the nine presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by its exact name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// SetPreset replaces the record with the preset position and a single
// history entry. Unknown names return r unchanged and false.
func SetPreset(r Record, name string) (Record, bool) {
	p, ok := LookupPreset(name)
	if !ok {
		return r, false
	}

	return Record{
		Values:  p.Value,
		History: []string{fmt.Sprintf("You set starting alignment to %s", p.Name)},
	}, true
}
