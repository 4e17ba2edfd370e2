package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	alignmentmock "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment/mock"
	"github.com/KirkDiggler/rpg-alignment/internal/seed"
)

const rosterYAML = `
characters:
  - name: Ash
    player_owned: true
    preset: Lawful Good
    shifts:
      - info: Spared the bandit
        moral: 2
  - name: Innkeeper
    type: npc
    alignment:
      law: 22
      moral: 30
`

type SeedTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *alignmentmock.MockService
	ctx     context.Context
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = alignmentmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
}

func (s *SeedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SeedTestSuite) TestParse() {
	roster, err := seed.Parse(strings.NewReader(rosterYAML))
	s.Require().NoError(err)
	s.Require().Len(roster.Characters, 2)

	ash := roster.Characters[0]
	s.Equal("Ash", ash.Name)
	s.Equal(entities.CharacterTypeCharacter, ash.Type)
	s.True(ash.PlayerOwned)
	s.Equal("Lawful Good", ash.Preset)
	s.Equal([]seed.Shift{{Info: "Spared the bandit", Moral: 2}}, ash.Shifts)

	inn := roster.Characters[1]
	s.Equal("npc", inn.Type)
	s.Equal(&alignment.Value{Law: 22, Moral: 30}, inn.Alignment)
}

func (s *SeedTestSuite) TestParseEmpty() {
	roster, err := seed.Parse(strings.NewReader(""))
	s.Require().NoError(err)
	s.Empty(roster.Characters)
}

func (s *SeedTestSuite) TestParseKeepsOutOfRangeAlignment() {
	// Registration clamps, so the parser passes values through untouched
	roster, err := seed.Parse(strings.NewReader("characters:\n  - name: Ash\n    alignment: {law: 50, moral: -3}\n"))
	s.Require().NoError(err)
	s.Require().Len(roster.Characters, 1)
	s.Equal(&alignment.Value{Law: 50, Moral: -3}, roster.Characters[0].Alignment)
}

func (s *SeedTestSuite) TestParseInvalid() {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing name",
			input:   "characters:\n  - player_owned: true\n",
			wantErr: "characters[0].name",
		},
		{
			name:    "unknown preset",
			input:   "characters:\n  - name: Ash\n    preset: Mostly Fine\n",
			wantErr: "characters[0].preset",
		},
		{
			name:    "unknown field",
			input:   "characters:\n  - name: Ash\n    level: 3\n",
			wantErr: "decode",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := seed.Parse(strings.NewReader(tt.input))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tt.wantErr)
		})
	}
}

func (s *SeedTestSuite) TestApply() {
	roster, err := seed.Parse(strings.NewReader(rosterYAML))
	s.Require().NoError(err)

	lg := alignment.Value{Law: 37, Moral: 37}
	shifted := alignment.Value{Law: 37, Moral: 39}

	gomock.InOrder(
		s.mockSvc.EXPECT().
			RegisterCharacter(s.ctx, &alignmentsvc.RegisterCharacterInput{
				Name:        "Ash",
				Type:        entities.CharacterTypeCharacter,
				PlayerOwned: true,
			}).
			Return(&alignmentsvc.RegisterCharacterOutput{
				Character: &entities.Character{ID: "char-1", Name: "Ash"},
			}, nil),
		s.mockSvc.EXPECT().
			SetPreset(s.ctx, &alignmentsvc.SetPresetInput{CharacterID: "char-1", Preset: "Lawful Good"}).
			Return(&alignmentsvc.SetPresetOutput{
				Ledger:  alignmentsvc.Ledger{Record: alignment.Record{Values: lg}, Abbreviation: "LG"},
				Applied: true,
			}, nil),
		s.mockSvc.EXPECT().
			ApplyDelta(s.ctx, &alignmentsvc.ApplyDeltaInput{
				CharacterID: "char-1",
				MoralDelta:  2,
				Info:        "Spared the bandit",
			}).
			Return(&alignmentsvc.ApplyDeltaOutput{
				Ledger:  alignmentsvc.Ledger{Record: alignment.Record{Values: shifted}, Abbreviation: "LG"},
				Applied: true,
			}, nil),
		s.mockSvc.EXPECT().
			RegisterCharacter(s.ctx, &alignmentsvc.RegisterCharacterInput{
				Name:      "Innkeeper",
				Type:      "npc",
				Alignment: &alignment.Value{Law: 22, Moral: 30},
			}).
			Return(&alignmentsvc.RegisterCharacterOutput{
				Character: &entities.Character{ID: "char-2", Name: "Innkeeper"},
				Ledger:    alignmentsvc.Ledger{Abbreviation: "NG"},
			}, nil),
	)

	results, err := seed.Apply(s.ctx, s.mockSvc, roster)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(shifted, results[0].Ledger.Record.Values)
	s.Equal("NG", results[1].Ledger.Abbreviation)
}

func (s *SeedTestSuite) TestApplyStopsOnError() {
	roster := &seed.Roster{Characters: []seed.Character{{Name: "Ash"}, {Name: "Bram"}}}

	s.mockSvc.EXPECT().
		RegisterCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("storage down"))

	results, err := seed.Apply(s.ctx, s.mockSvc, roster)
	s.Require().Error(err)
	s.Empty(results)
	s.Contains(err.Error(), "Ash")
}
