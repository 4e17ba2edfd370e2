// Package alignment implements the alignment orchestrator: ledger reads,
// shifts, presets and the roster the ledgers belong to.
package alignment

//go:generate mockgen -destination=mock/mock_service.go -package=alignmentmock github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	"github.com/KirkDiggler/rpg-alignment/internal/pkg/idgen"
	alignmentrepo "github.com/KirkDiggler/rpg-alignment/internal/repositories/alignment"
	characterrepo "github.com/KirkDiggler/rpg-alignment/internal/repositories/character"
)

// Service defines the interface for alignment operations
type Service interface {
	// GetLedger returns the character's record, or the default when none is stored
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// ApplyDelta shifts the alignment and appends one history entry
	ApplyDelta(ctx context.Context, input *ApplyDeltaInput) (*ApplyDeltaOutput, error)

	// SetPreset replaces the alignment and history with a named preset
	SetPreset(ctx context.Context, input *SetPresetInput) (*SetPresetOutput, error)

	// ListPresets returns the nine presets and the reset warning
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// SyncTrait writes the alignment trait slug onto the character
	SyncTrait(ctx context.Context, input *SyncTraitInput) (*SyncTraitOutput, error)

	// RegisterCharacter adds a character to the roster
	RegisterCharacter(ctx context.Context, input *RegisterCharacterInput) (*RegisterCharacterOutput, error)

	// RemoveCharacter removes a character and its ledger
	RemoveCharacter(ctx context.Context, input *RemoveCharacterInput) (*RemoveCharacterOutput, error)

	// ListCharacters returns the roster with each character's ledger
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
}

// Config holds the dependencies for the alignment orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	AlignmentRepo alignmentrepo.Repository
	IDGenerator   idgen.Generator

	// Default is the position of a character with no stored record
	Default alignment.Value
	// SyncTraits updates the trait slug after every applied change
	SyncTraits bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AlignmentRepo == nil {
		vb.RequiredField("AlignmentRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRange("Default.Law", c.Default.Law, alignment.MinValue, alignment.MaxValue, vb)
	errors.ValidateRange("Default.Moral", c.Default.Moral, alignment.MinValue, alignment.MaxValue, vb)

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	alignmentRepo alignmentrepo.Repository
	idGen         idgen.Generator
	defaultValue  alignment.Value
	syncTraits    bool
}

// NewOrchestrator creates a new alignment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		alignmentRepo: cfg.AlignmentRepo,
		idGen:         cfg.IDGenerator,
		defaultValue:  cfg.Default,
		syncTraits:    cfg.SyncTraits,
	}, nil
}

func (o *orchestrator) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	got, err := o.alignmentRepo.Get(ctx, alignmentrepo.GetInput{CharacterID: char.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get alignment for %s", char.ID)
	}

	record := got.Record
	if !got.Found {
		record = alignment.NewRecord(o.defaultValue)
	}

	return &GetLedgerOutput{
		Character: char,
		Ledger:    newLedger(record, got.Found),
	}, nil
}

func (o *orchestrator) ApplyDelta(ctx context.Context, input *ApplyDeltaInput) (*ApplyDeltaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var entry string
	updated, err := o.alignmentRepo.Update(ctx, alignmentrepo.UpdateInput{
		CharacterID: char.ID,
		Default:     alignment.NewRecord(o.defaultValue),
		Mutate: func(current alignment.Record) (alignment.Record, bool, error) {
			next, e, ok := alignment.ApplyDelta(current, input.LawDelta, input.MoralDelta, input.Info)
			entry = e
			return next, ok, nil
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to apply alignment change",
			"character_id", char.ID,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to apply alignment change")
	}

	if !updated.Applied {
		slog.DebugContext(ctx, "empty alignment change ignored",
			"character_id", char.ID)
		return &ApplyDeltaOutput{Ledger: newLedger(updated.Record, updated.Found)}, nil
	}

	slog.InfoContext(ctx, "alignment changed",
		"character_id", char.ID,
		"law", updated.Record.Values.Law,
		"moral", updated.Record.Values.Moral,
		"entry", entry)

	o.afterChange(ctx, char, updated.Record.Values)

	return &ApplyDeltaOutput{
		Ledger:  newLedger(updated.Record, true),
		Entry:   entry,
		Applied: true,
	}, nil
}

func (o *orchestrator) SetPreset(ctx context.Context, input *SetPresetInput) (*SetPresetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	updated, err := o.alignmentRepo.Update(ctx, alignmentrepo.UpdateInput{
		CharacterID: char.ID,
		Default:     alignment.NewRecord(o.defaultValue),
		Mutate: func(current alignment.Record) (alignment.Record, bool, error) {
			next, ok := alignment.SetPreset(current, input.Preset)
			return next, ok, nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set alignment preset")
	}

	if !updated.Applied {
		slog.WarnContext(ctx, "unknown alignment preset ignored",
			"character_id", char.ID,
			"preset", input.Preset)
		return &SetPresetOutput{Ledger: newLedger(updated.Record, updated.Found)}, nil
	}

	slog.InfoContext(ctx, "alignment preset applied",
		"character_id", char.ID,
		"preset", input.Preset,
		"law", updated.Record.Values.Law,
		"moral", updated.Record.Values.Moral)

	o.afterChange(ctx, char, updated.Record.Values)

	return &SetPresetOutput{
		Ledger:  newLedger(updated.Record, true),
		Applied: true,
	}, nil
}

func (o *orchestrator) ListPresets(_ context.Context, _ *ListPresetsInput) (*ListPresetsOutput, error) {
	return &ListPresetsOutput{
		Presets: alignment.Presets(),
		Warning: alignment.PresetWarning,
	}, nil
}

func (o *orchestrator) SyncTrait(ctx context.Context, input *SyncTraitInput) (*SyncTraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.GetLedger(ctx, &GetLedgerInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	return o.writeTrait(ctx, ledger.Character, ledger.Ledger.Record.Values)
}

func (o *orchestrator) RegisterCharacter(
	ctx context.Context,
	input *RegisterCharacterInput,
) (*RegisterCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(input.Name), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	charType := input.Type
	if charType == "" {
		charType = entities.CharacterTypeCharacter
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: &entities.Character{
		ID:          o.idGen.Generate(),
		Name:        strings.TrimSpace(input.Name),
		Type:        charType,
		PlayerOwned: input.PlayerOwned,
		Traits:      slices.Clone(input.Traits),
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	char := created.Character

	ledger := newLedger(alignment.NewRecord(o.defaultValue), false)
	if input.Alignment != nil {
		set, err := o.alignmentRepo.Set(ctx, alignmentrepo.SetInput{
			CharacterID: char.ID,
			Record:      alignment.NewRecord(*input.Alignment),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to store initial alignment")
		}
		ledger = newLedger(set.Record, true)
	}

	slog.InfoContext(ctx, "character registered",
		"character_id", char.ID,
		"name", char.Name,
		"player_character", char.IsPlayerCharacter())

	return &RegisterCharacterOutput{Character: char, Ledger: ledger}, nil
}

func (o *orchestrator) RemoveCharacter(
	ctx context.Context,
	input *RemoveCharacterInput,
) (*RemoveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// Ledger first so a failed roster delete leaves no orphan ledger. The
	// ledger delete is idempotent on retry.
	if _, err := o.alignmentRepo.Delete(ctx, alignmentrepo.DeleteInput{CharacterID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete alignment")
	}
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character removed", "character_id", input.CharacterID)

	return &RemoveCharacterOutput{}, nil
}

func (o *orchestrator) ListCharacters(
	ctx context.Context,
	input *ListCharactersInput,
) (*ListCharactersOutput, error) {
	if input == nil {
		input = &ListCharactersInput{}
	}

	listed, err := o.characterRepo.List(ctx, characterrepo.ListInput{
		PlayerCharactersOnly: input.PlayerCharactersOnly,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	ids := make([]string, len(listed.Characters))
	for i, c := range listed.Characters {
		ids[i] = c.ID
	}

	records, err := o.alignmentRepo.GetMany(ctx, alignmentrepo.GetManyInput{CharacterIDs: ids})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get alignments")
	}

	out := make([]CharacterLedger, len(listed.Characters))
	for i, c := range listed.Characters {
		record, found := records.Records[c.ID]
		if !found {
			record = alignment.NewRecord(o.defaultValue)
		}
		out[i] = CharacterLedger{Character: c, Ledger: newLedger(record, found)}
	}

	return &ListCharactersOutput{Characters: out}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, characterID string) (*entities.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "alignment requested for unknown character",
				"character_id", characterID)
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	return got.Character, nil
}

// afterChange runs once the ledger write has committed. Trait sync failures
// are logged, not returned, since the change is already stored. SyncTrait
// repairs a stale trait.
func (o *orchestrator) afterChange(ctx context.Context, char *entities.Character, v alignment.Value) {
	if !o.syncTraits {
		return
	}
	if _, err := o.writeTrait(ctx, char, v); err != nil {
		slog.WarnContext(ctx, "alignment trait sync failed after committed change",
			"character_id", char.ID,
			"error", err.Error())
	}
}

func (o *orchestrator) writeTrait(ctx context.Context, char *entities.Character, v alignment.Value) (*SyncTraitOutput, error) {
	trait := alignment.TraitFor(v)
	traits := alignment.ReplaceTrait(char.Traits, trait)
	if slices.Equal(traits, char.Traits) {
		return &SyncTraitOutput{Character: char, Trait: trait}, nil
	}

	next := *char
	next.Traits = traits
	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &next})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update traits")
	}

	slog.DebugContext(ctx, "alignment trait synced",
		"character_id", char.ID,
		"trait", trait)

	return &SyncTraitOutput{Character: updated.Character, Trait: trait, Changed: true}, nil
}

func newLedger(record alignment.Record, stored bool) Ledger {
	return Ledger{
		Record:       record,
		Abbreviation: record.Values.Abbreviation(),
		Labels:       record.Values.Labels(),
		Stored:       stored,
	}
}
