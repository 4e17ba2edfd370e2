// Package grid implements the grid orchestrator: party snapshots, party and
// tab images, and hover lookups.
package grid

//go:generate mockgen -destination=mock/mock_service.go -package=gridmock github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid Service

import (
	"bytes"
	"context"
	"image"
	"log/slog"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

// Service defines the interface for grid operations
type Service interface {
	// Snapshot reads every player character once and places their markers
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)

	// RenderParty draws the shared grid with legend
	RenderParty(ctx context.Context, input *RenderPartyInput) (*RenderPartyOutput, error)

	// Hover finds the marker under a grid-space point
	Hover(ctx context.Context, input *HoverInput) (*HoverOutput, error)

	// RenderTab draws one character's tab grid and view model
	RenderTab(ctx context.Context, input *RenderTabInput) (*RenderTabOutput, error)
}

// Config holds the dependencies for the grid orchestrator
type Config struct {
	AlignmentService alignmentsvc.Service

	// Default places characters with no stored record on the party grid
	Default alignment.Value
	Party   grid.PartyOptions
	TabSize float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.AlignmentService == nil {
		vb.RequiredField("AlignmentService")
	}
	errors.ValidateRange("Default.Law", c.Default.Law, alignment.MinValue, alignment.MaxValue, vb)
	errors.ValidateRange("Default.Moral", c.Default.Moral, alignment.MinValue, alignment.MaxValue, vb)
	if c.Party.Layout.Size < 0 {
		vb.Field("Party.Layout.Size", "cannot be negative")
	}
	if c.TabSize < 0 {
		vb.Field("TabSize", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	alignment    alignmentsvc.Service
	defaultValue alignment.Value
	party        grid.PartyOptions
	tabSize      float64
}

// NewOrchestrator creates a new grid orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	party := cfg.Party
	defaults := grid.DefaultPartyOptions()
	if party.Layout.Size == 0 {
		party.Layout = defaults.Layout
	}
	if party.Style.Diameter == 0 {
		party.Style = defaults.Style
	}
	if party.LegendStyle.Diameter == 0 {
		party.LegendStyle = defaults.LegendStyle
	}

	tabSize := cfg.TabSize
	if tabSize == 0 {
		tabSize = grid.TabSize
	}

	return &orchestrator{
		alignment:    cfg.AlignmentService,
		defaultValue: cfg.Default,
		party:        party,
		tabSize:      tabSize,
	}, nil
}

func (o *orchestrator) Snapshot(ctx context.Context, _ *SnapshotInput) (*SnapshotOutput, error) {
	listed, err := o.alignment.ListCharacters(ctx, &alignmentsvc.ListCharactersInput{
		PlayerCharactersOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list party")
	}

	entries := make([]grid.Entry, len(listed.Characters))
	for i, c := range listed.Characters {
		v := c.Ledger.Record.Values
		if !c.Ledger.Stored {
			v = o.defaultValue
		}
		entries[i] = grid.Entry{ID: c.Character.ID, Name: c.Character.Name, Value: v}
	}

	return &SnapshotOutput{
		Markers: grid.PlaceMarkers(o.party.Layout, o.party.Style, entries),
	}, nil
}

func (o *orchestrator) RenderParty(ctx context.Context, input *RenderPartyInput) (*RenderPartyOutput, error) {
	if input == nil {
		input = &RenderPartyInput{}
	}

	snap, err := o.Snapshot(ctx, &SnapshotInput{})
	if err != nil {
		return nil, err
	}

	opts := o.party
	opts.HighlightID = input.HighlightID
	rendered := grid.RenderParty(snap.Markers, opts)

	if input.HighlightID != "" && !rendered.Highlighted {
		slog.DebugContext(ctx, "highlight target not on party grid",
			"character_id", input.HighlightID)
	}

	data, err := encode(rendered.Image)
	if err != nil {
		return nil, err
	}

	bounds := rendered.Image.Bounds()
	return &RenderPartyOutput{
		PNG:         data,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Origin:      rendered.Origin,
		GridSize:    o.party.Layout.Size,
		Markers:     snap.Markers,
		Highlighted: rendered.Highlighted,
	}, nil
}

func (o *orchestrator) Hover(ctx context.Context, input *HoverInput) (*HoverOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap, err := o.Snapshot(ctx, &SnapshotInput{})
	if err != nil {
		return nil, err
	}

	m, ok := grid.HitTest(snap.Markers, input.X, input.Y)
	if !ok {
		return &HoverOutput{}, nil
	}

	return &HoverOutput{
		Found:   true,
		Marker:  m,
		Tooltip: grid.TooltipFor(m),
	}, nil
}

func (o *orchestrator) RenderTab(ctx context.Context, input *RenderTabInput) (*RenderTabOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.alignment.GetLedger(ctx, &alignmentsvc.GetLedgerInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	presets, err := o.alignment.ListPresets(ctx, &alignmentsvc.ListPresetsInput{})
	if err != nil {
		return nil, err
	}

	v := ledger.Ledger.Record.Values
	data, err := encode(grid.RenderTab(v, o.tabSize))
	if err != nil {
		return nil, err
	}

	activeTab := input.ActiveTab
	if activeTab == "" {
		activeTab = TabAlignment
	}

	return &RenderTabOutput{
		PNG: data,
		Tab: TabView{
			CharacterID:  ledger.Character.ID,
			Name:         ledger.Character.Name,
			Value:        v,
			Abbreviation: ledger.Ledger.Abbreviation,
			LawLabel:     v.LawLabel(),
			MoralLabel:   v.MoralLabel(),
			History:      ledger.Ledger.Record.History,
			Presets:      presets.Presets,
			Warning:      presets.Warning,
		},
		ActiveTab: activeTab,
	}, nil
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := grid.EncodePNG(&buf, img); err != nil {
		return nil, errors.Wrapf(err, "failed to encode png")
	}
	return buf.Bytes(), nil
}
