package alignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

func TestSetPreset(t *testing.T) {
	start := alignment.Record{
		Values:  alignment.Value{Law: 40, Moral: 40},
		History: []string{"a", "b", "c"},
	}

	next, ok := alignment.SetPreset(start, "Chaotic Evil")

	require.True(t, ok)
	assert.Equal(t, alignment.Value{Law: 7, Moral: 7}, next.Values)
	assert.Equal(t, []string{"You set starting alignment to Chaotic Evil"}, next.History)
	assert.Len(t, start.History, 3)
}

func TestSetPreset_Unknown(t *testing.T) {
	start := alignment.NewRecord(alignment.Value{Law: 14, Moral: 14})

	for _, name := range []string{"", "lawful good", "True Neutral", "Chaotic  Evil"} {
		next, ok := alignment.SetPreset(start, name)
		assert.False(t, ok, name)
		assert.Equal(t, start, next)
	}
}

func TestPresets(t *testing.T) {
	expected := map[string]alignment.Value{
		"Lawful Good":     {Law: 37, Moral: 37},
		"Lawful Neutral":  {Law: 37, Moral: 22},
		"Lawful Evil":     {Law: 37, Moral: 7},
		"Neutral Good":    {Law: 22, Moral: 37},
		"Neutral Neutral": {Law: 22, Moral: 22},
		"Neutral Evil":    {Law: 22, Moral: 7},
		"Chaotic Good":    {Law: 7, Moral: 37},
		"Chaotic Neutral": {Law: 7, Moral: 22},
		"Chaotic Evil":    {Law: 7, Moral: 7},
	}

	all := alignment.Presets()
	require.Len(t, all, len(expected))
	for _, p := range all {
		assert.Equal(t, expected[p.Name], p.Value, p.Name)
	}

	all[0].Name = "mutated"
	assert.Equal(t, "Lawful Good", alignment.Presets()[0].Name)
}
