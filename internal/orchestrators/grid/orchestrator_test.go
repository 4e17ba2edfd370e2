package grid_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	alignmentmock "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment/mock"
	"github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid"
	rendergrid "github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAlignment *alignmentmock.MockService
	orchestrator  grid.Service
	ctx           context.Context
	party         []alignmentsvc.CharacterLedger
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAlignment = alignmentmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	orch, err := grid.NewOrchestrator(&grid.Config{
		AlignmentService: s.mockAlignment,
		Default:          alignment.Value{Law: 22, Moral: 22},
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.party = []alignmentsvc.CharacterLedger{
		{
			Character: &entities.Character{ID: "char_a", Name: "Alice"},
			Ledger: alignmentsvc.Ledger{
				Record: alignment.NewRecord(alignment.Value{Law: 0, Moral: 0}),
				Stored: true,
			},
		},
		{
			// No stored record: the orchestrator's own default applies
			Character: &entities.Character{ID: "char_b", Name: "Bob"},
			Ledger: alignmentsvc.Ledger{
				Record: alignment.NewRecord(alignment.Value{Law: 14, Moral: 14}),
			},
		},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectParty() {
	s.mockAlignment.EXPECT().
		ListCharacters(s.ctx, &alignmentsvc.ListCharactersInput{PlayerCharactersOnly: true}).
		Return(&alignmentsvc.ListCharactersOutput{Characters: s.party}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := grid.NewOrchestrator(&grid.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSnapshot() {
	s.expectParty()

	output, err := s.orchestrator.Snapshot(s.ctx, &grid.SnapshotInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Markers, 2)

	s.Equal("char_a", output.Markers[0].ID)
	s.InDelta(445, output.Markers[0].X, 1e-9)
	s.InDelta(445, output.Markers[0].Y, 1e-9)
	s.Equal(rendergrid.PaletteColor(0), output.Markers[0].Color)

	s.Equal(alignment.Value{Law: 22, Moral: 22}, output.Markers[1].Value)
	s.Equal(rendergrid.PaletteColor(1), output.Markers[1].Color)
}

func (s *OrchestratorTestSuite) TestSnapshot_Error() {
	s.mockAlignment.EXPECT().
		ListCharacters(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	output, err := s.orchestrator.Snapshot(s.ctx, &grid.SnapshotInput{})
	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestRenderParty() {
	s.expectParty()

	output, err := s.orchestrator.RenderParty(s.ctx, &grid.RenderPartyInput{HighlightID: "char_b"})
	s.Require().NoError(err)
	s.True(output.Highlighted)
	s.Len(output.Markers, 2)
	s.InDelta(rendergrid.PartySize, output.GridSize, 1e-9)

	img, err := png.Decode(bytes.NewReader(output.PNG))
	s.Require().NoError(err)
	s.Equal(output.Width, img.Bounds().Dx())
	s.Equal(output.Height, img.Bounds().Dy())
}

func (s *OrchestratorTestSuite) TestHover() {
	s.expectParty()

	output, err := s.orchestrator.Hover(s.ctx, &grid.HoverInput{X: 440, Y: 450})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal("char_a", output.Marker.ID)
	s.Equal("Alice (chaotic evil)", output.Tooltip.Text)
	s.InDelta(445-15.5-6, output.Tooltip.Y, 1e-9)
}

func (s *OrchestratorTestSuite) TestHover_Miss() {
	s.expectParty()

	output, err := s.orchestrator.Hover(s.ctx, &grid.HoverInput{X: 10, Y: 10})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Empty(output.Tooltip.Text)
}

func (s *OrchestratorTestSuite) TestRenderTab() {
	record := alignment.Record{
		Values:  alignment.Value{Law: 17, Moral: 12},
		History: []string{"Test (+3 laws, -2 morals)"},
	}
	s.mockAlignment.EXPECT().
		GetLedger(s.ctx, &alignmentsvc.GetLedgerInput{CharacterID: "char_a"}).
		Return(&alignmentsvc.GetLedgerOutput{
			Character: &entities.Character{ID: "char_a", Name: "Alice"},
			Ledger: alignmentsvc.Ledger{
				Record:       record,
				Abbreviation: "NE",
				Labels:       "(neutral evil)",
				Stored:       true,
			},
		}, nil)
	s.mockAlignment.EXPECT().
		ListPresets(s.ctx, &alignmentsvc.ListPresetsInput{}).
		Return(&alignmentsvc.ListPresetsOutput{
			Presets: alignment.Presets(),
			Warning: alignment.PresetWarning,
		}, nil)

	output, err := s.orchestrator.RenderTab(s.ctx, &grid.RenderTabInput{CharacterID: "char_a"})
	s.Require().NoError(err)
	s.Equal(grid.TabAlignment, output.ActiveTab)
	s.Equal("Alice", output.Tab.Name)
	s.Equal("neutral", output.Tab.LawLabel)
	s.Equal("evil", output.Tab.MoralLabel)
	s.Equal(record.History, output.Tab.History)
	s.Len(output.Tab.Presets, 9)

	img, err := png.Decode(bytes.NewReader(output.PNG))
	s.Require().NoError(err)
	s.Equal(225, img.Bounds().Dx())
}

func (s *OrchestratorTestSuite) TestRenderTab_EchoesActiveTab() {
	s.mockAlignment.EXPECT().
		GetLedger(s.ctx, gomock.Any()).
		Return(&alignmentsvc.GetLedgerOutput{
			Character: &entities.Character{ID: "char_a"},
			Ledger:    alignmentsvc.Ledger{Record: alignment.NewRecord(alignment.Value{Law: 14, Moral: 14})},
		}, nil)
	s.mockAlignment.EXPECT().
		ListPresets(s.ctx, gomock.Any()).
		Return(&alignmentsvc.ListPresetsOutput{}, nil)

	output, err := s.orchestrator.RenderTab(s.ctx, &grid.RenderTabInput{CharacterID: "char_a", ActiveTab: "inventory"})
	s.Require().NoError(err)
	s.Equal("inventory", output.ActiveTab)
}

func (s *OrchestratorTestSuite) TestRenderTab_UnknownCharacter() {
	s.mockAlignment.EXPECT().
		GetLedger(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("character with ID char_x not found"))

	output, err := s.orchestrator.RenderTab(s.ctx, &grid.RenderTabInput{CharacterID: "char_x"})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
