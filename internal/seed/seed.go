// Package seed imports a roster of characters and starting alignments from
// a YAML file.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
)

// Roster is the top level of a seed file
type Roster struct {
	Characters []Character `yaml:"characters"`
}

// Character is one seeded roster entry. Preset wins over Alignment when both
// are set.
type Character struct {
	Name        string           `yaml:"name"`
	Type        string           `yaml:"type"`
	PlayerOwned bool             `yaml:"player_owned"`
	Traits      []string         `yaml:"traits"`
	Alignment   *alignment.Value `yaml:"alignment"`
	Preset      string           `yaml:"preset"`
	Shifts      []Shift          `yaml:"shifts"`
}

// Shift is a history entry replayed after the starting alignment
type Shift struct {
	Info  string `yaml:"info"`
	Law   int    `yaml:"law"`
	Moral int    `yaml:"moral"`
}

// Parse decodes and validates a seed file
func Parse(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil {
		if err == io.EOF {
			return &roster, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode seed file")
	}

	vb := errors.NewValidationBuilder()
	for i := range roster.Characters {
		c := &roster.Characters[i]
		if c.Type == "" {
			c.Type = entities.CharacterTypeCharacter
		}
		errors.ValidateRequired(fieldName(i, "name"), c.Name, vb)
		if c.Preset != "" {
			if _, ok := alignment.LookupPreset(c.Preset); !ok {
				vb.Fieldf(fieldName(i, "preset"), "unknown preset %q", c.Preset)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &roster, nil
}

// Result is one imported character
type Result struct {
	Character *entities.Character
	Ledger    alignmentsvc.Ledger
}

// Apply registers every character in order, then sets presets and replays
// shifts through the alignment service.
func Apply(ctx context.Context, svc alignmentsvc.Service, roster *Roster) ([]Result, error) {
	if svc == nil {
		return nil, errors.InvalidArgument("alignment service is required")
	}
	if roster == nil {
		return nil, errors.InvalidArgument("roster is required")
	}

	results := make([]Result, 0, len(roster.Characters))
	for _, c := range roster.Characters {
		registered, err := svc.RegisterCharacter(ctx, &alignmentsvc.RegisterCharacterInput{
			Name:        c.Name,
			Type:        c.Type,
			PlayerOwned: c.PlayerOwned,
			Traits:      c.Traits,
			Alignment:   c.Alignment,
		})
		if err != nil {
			return results, errors.Wrapf(err, "failed to register %s", c.Name)
		}

		result := Result{Character: registered.Character, Ledger: registered.Ledger}
		id := registered.Character.ID

		if c.Preset != "" {
			out, err := svc.SetPreset(ctx, &alignmentsvc.SetPresetInput{CharacterID: id, Preset: c.Preset})
			if err != nil {
				return results, errors.Wrapf(err, "failed to set preset for %s", c.Name)
			}
			result.Ledger = out.Ledger
		}

		for _, shift := range c.Shifts {
			out, err := svc.ApplyDelta(ctx, &alignmentsvc.ApplyDeltaInput{
				CharacterID: id,
				LawDelta:    shift.Law,
				MoralDelta:  shift.Moral,
				Info:        shift.Info,
			})
			if err != nil {
				return results, errors.Wrapf(err, "failed to apply shift for %s", c.Name)
			}
			result.Ledger = out.Ledger
		}

		slog.InfoContext(ctx, "Seeded character",
			"character_id", id,
			"name", c.Name,
			"alignment", result.Ledger.Abbreviation)
		results = append(results, result)
	}

	return results, nil
}

func fieldName(i int, field string) string {
	return fmt.Sprintf("characters[%d].%s", i, field)
}
