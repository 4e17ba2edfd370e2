// Package v1alpha1 handles the alignment grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	gridsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

// HandlerConfig holds dependencies for the alignment handler
type HandlerConfig struct {
	AlignmentService alignmentsvc.Service
	GridService      gridsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.AlignmentService == nil {
		vb.RequiredField("AlignmentService")
	}
	if c.GridService == nil {
		vb.RequiredField("GridService")
	}
	return vb.Build()
}

// Handler implements the alignment gRPC service
type Handler struct {
	alignmentService alignmentsvc.Service
	gridService      gridsvc.Service
}

var _ AlignmentServiceServer = (*Handler)(nil)

// NewHandler creates a new alignment handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		alignmentService: cfg.AlignmentService,
		gridService:      cfg.GridService,
	}, nil
}

// GetLedger returns a character's alignment and history
func (h *Handler) GetLedger(ctx context.Context, req *GetLedgerRequest) (*GetLedgerResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.alignmentService.GetLedger(ctx, &alignmentsvc.GetLedgerInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetLedgerResponse{
		Character: convertCharacter(out.Character),
		Ledger:    convertLedger(out.Ledger),
	}, nil
}

// ApplyDelta shifts a character's alignment
func (h *Handler) ApplyDelta(ctx context.Context, req *ApplyDeltaRequest) (*ApplyDeltaResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.alignmentService.ApplyDelta(ctx, &alignmentsvc.ApplyDeltaInput{
		CharacterID: req.CharacterId,
		LawDelta:    int(req.LawDelta),
		MoralDelta:  int(req.MoralDelta),
		Info:        req.Info,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyDeltaResponse{
		Ledger:  convertLedger(out.Ledger),
		Entry:   out.Entry,
		Applied: out.Applied,
	}, nil
}

// SetPreset resets a character's alignment to a named preset
func (h *Handler) SetPreset(ctx context.Context, req *SetPresetRequest) (*SetPresetResponse, error) {
	vb := errors.NewValidationBuilder()
	if req.CharacterId == "" {
		vb.RequiredField("character_id")
	}
	if req.Preset == "" {
		vb.RequiredField("preset")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.alignmentService.SetPreset(ctx, &alignmentsvc.SetPresetInput{
		CharacterID: req.CharacterId,
		Preset:      req.Preset,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetPresetResponse{
		Ledger:  convertLedger(out.Ledger),
		Applied: out.Applied,
	}, nil
}

// ListPresets returns the preset table
func (h *Handler) ListPresets(ctx context.Context, _ *ListPresetsRequest) (*ListPresetsResponse, error) {
	out, err := h.alignmentService.ListPresets(ctx, &alignmentsvc.ListPresetsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListPresetsResponse{
		Presets: convertPresets(out.Presets),
		Warning: out.Warning,
	}, nil
}

// SyncTrait writes the alignment trait onto a character
func (h *Handler) SyncTrait(ctx context.Context, req *SyncTraitRequest) (*SyncTraitResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.alignmentService.SyncTrait(ctx, &alignmentsvc.SyncTraitInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SyncTraitResponse{
		Character: convertCharacter(out.Character),
		Trait:     out.Trait,
		Changed:   out.Changed,
	}, nil
}

// RegisterCharacter adds a roster entry
func (h *Handler) RegisterCharacter(
	ctx context.Context,
	req *RegisterCharacterRequest,
) (*RegisterCharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	input := &alignmentsvc.RegisterCharacterInput{
		Name:        req.Name,
		Type:        req.Type,
		PlayerOwned: req.PlayerOwned,
		Traits:      req.Traits,
	}
	if req.Alignment != nil {
		input.Alignment = &alignment.Value{
			Law:   int(req.Alignment.Law),
			Moral: int(req.Alignment.Moral),
		}
	}

	out, err := h.alignmentService.RegisterCharacter(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RegisterCharacterResponse{
		Character: convertCharacter(out.Character),
		Ledger:    convertLedger(out.Ledger),
	}, nil
}

// RemoveCharacter deletes a roster entry and its ledger
func (h *Handler) RemoveCharacter(
	ctx context.Context,
	req *RemoveCharacterRequest,
) (*RemoveCharacterResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	_, err := h.alignmentService.RemoveCharacter(ctx, &alignmentsvc.RemoveCharacterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemoveCharacterResponse{}, nil
}

// ListCharacters returns the roster with ledgers
func (h *Handler) ListCharacters(
	ctx context.Context,
	req *ListCharactersRequest,
) (*ListCharactersResponse, error) {
	out, err := h.alignmentService.ListCharacters(ctx, &alignmentsvc.ListCharactersInput{
		PlayerCharactersOnly: req.PlayerCharactersOnly,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := make([]*CharacterLedger, 0, len(out.Characters))
	for _, cl := range out.Characters {
		characters = append(characters, &CharacterLedger{
			Character: convertCharacter(cl.Character),
			Ledger:    convertLedger(cl.Ledger),
		})
	}

	return &ListCharactersResponse{Characters: characters}, nil
}

// RenderParty draws the shared party grid
func (h *Handler) RenderParty(ctx context.Context, req *RenderPartyRequest) (*RenderPartyResponse, error) {
	out, err := h.gridService.RenderParty(ctx, &gridsvc.RenderPartyInput{
		HighlightID: req.HighlightId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RenderPartyResponse{
		Png:         out.PNG,
		Width:       int32(out.Width),
		Height:      int32(out.Height),
		OriginX:     int32(out.Origin.X),
		OriginY:     int32(out.Origin.Y),
		GridSize:    out.GridSize,
		Markers:     convertMarkers(out.Markers),
		Highlighted: out.Highlighted,
	}, nil
}

// Hover finds the party marker under a grid-space point
func (h *Handler) Hover(ctx context.Context, req *HoverRequest) (*HoverResponse, error) {
	out, err := h.gridService.Hover(ctx, &gridsvc.HoverInput{
		X: req.X,
		Y: req.Y,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if !out.Found {
		return &HoverResponse{}, nil
	}

	return &HoverResponse{
		Found:  true,
		Marker: convertMarker(out.Marker),
		Tooltip: &Tooltip{
			Text: out.Tooltip.Text,
			X:    out.Tooltip.X,
			Y:    out.Tooltip.Y,
		},
	}, nil
}

// RenderTab draws one character's alignment tab
func (h *Handler) RenderTab(ctx context.Context, req *RenderTabRequest) (*RenderTabResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.gridService.RenderTab(ctx, &gridsvc.RenderTabInput{
		CharacterID: req.CharacterId,
		ActiveTab:   req.ActiveTab,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RenderTabResponse{
		Png: out.PNG,
		Tab: &TabView{
			CharacterId:  out.Tab.CharacterID,
			Name:         out.Tab.Name,
			Alignment:    convertValue(out.Tab.Value),
			Abbreviation: out.Tab.Abbreviation,
			LawLabel:     out.Tab.LawLabel,
			MoralLabel:   out.Tab.MoralLabel,
			History:      out.Tab.History,
			Presets:      convertPresets(out.Tab.Presets),
			Warning:      out.Tab.Warning,
		},
		ActiveTab: out.ActiveTab,
	}, nil
}

func convertValue(v alignment.Value) *Alignment {
	return &Alignment{
		Law:   int32(v.Law),
		Moral: int32(v.Moral),
	}
}

func convertLedger(l alignmentsvc.Ledger) *Ledger {
	history := l.Record.History
	if history == nil {
		history = []string{}
	}
	return &Ledger{
		Alignment:    convertValue(l.Record.Values),
		History:      history,
		Abbreviation: l.Abbreviation,
		Labels:       l.Labels,
		Stored:       l.Stored,
	}
}

func convertCharacter(c *entities.Character) *Character {
	if c == nil {
		return nil
	}
	return &Character{
		Id:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		PlayerOwned: c.PlayerOwned,
		Traits:      c.Traits,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func convertPresets(presets []alignment.Preset) []*Preset {
	result := make([]*Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, &Preset{
			Name:      p.Name,
			Alignment: convertValue(p.Value),
		})
	}
	return result
}

func convertMarker(m grid.Marker) *Marker {
	return &Marker{
		Id:        m.ID,
		Name:      m.Name,
		Color:     grid.Hex(m.Color),
		Alignment: convertValue(m.Value),
		X:         m.X,
		Y:         m.Y,
		Radius:    m.Radius,
	}
}

func convertMarkers(markers []grid.Marker) []*Marker {
	result := make([]*Marker, 0, len(markers))
	for _, m := range markers {
		result = append(result, convertMarker(m))
	}
	return result
}
