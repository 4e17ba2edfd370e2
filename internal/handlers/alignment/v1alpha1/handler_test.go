package v1alpha1_test

import (
	"context"
	"image"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	alignmentmock "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment/mock"
	gridsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid"
	gridmock "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid/mock"
	"github.com/KirkDiggler/rpg-alignment/internal/render/grid"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAlignment *alignmentmock.MockService
	mockGrid      *gridmock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAlignment = alignmentmock.NewMockService(s.ctrl)
	s.mockGrid = gridmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AlignmentService: s.mockAlignment,
		GridService:      s.mockGrid,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) ledger(law, moral int, history ...string) alignmentsvc.Ledger {
	v := alignment.Value{Law: law, Moral: moral}
	return alignmentsvc.Ledger{
		Record:       alignment.Record{Values: v, History: history},
		Abbreviation: v.Abbreviation(),
		Labels:       v.Labels(),
		Stored:       true,
	}
}

func (s *HandlerTestSuite) TestNewHandler_MissingServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "AlignmentService")
	s.Contains(err.Error(), "GridService")
}

func (s *HandlerTestSuite) TestGetLedger() {
	s.Run("requires character id", func() {
		resp, err := s.handler.GetLedger(s.ctx, &v1alpha1.GetLedgerRequest{})
		s.Nil(resp)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("converts the ledger", func() {
		s.mockAlignment.EXPECT().
			GetLedger(s.ctx, &alignmentsvc.GetLedgerInput{CharacterID: "char-1"}).
			Return(&alignmentsvc.GetLedgerOutput{
				Character: &entities.Character{ID: "char-1", Name: "Mira", Type: "character", PlayerOwned: true},
				Ledger:    s.ledger(37, 22, "You set starting alignment to Lawful Neutral"),
			}, nil)

		resp, err := s.handler.GetLedger(s.ctx, &v1alpha1.GetLedgerRequest{CharacterId: "char-1"})
		s.Require().NoError(err)
		s.Equal("Mira", resp.Character.Name)
		s.Equal(&v1alpha1.Alignment{Law: 37, Moral: 22}, resp.Ledger.Alignment)
		s.Equal("LN", resp.Ledger.Abbreviation)
		s.Equal("(lawful neutral)", resp.Ledger.Labels)
		s.Equal([]string{"You set starting alignment to Lawful Neutral"}, resp.Ledger.History)
		s.True(resp.Ledger.Stored)
	})

	s.Run("maps not found", func() {
		s.mockAlignment.EXPECT().
			GetLedger(s.ctx, &alignmentsvc.GetLedgerInput{CharacterID: "missing"}).
			Return(nil, errors.NotFound("character not found"))

		_, err := s.handler.GetLedger(s.ctx, &v1alpha1.GetLedgerRequest{CharacterId: "missing"})
		s.Equal(codes.NotFound, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestApplyDelta() {
	s.mockAlignment.EXPECT().
		ApplyDelta(s.ctx, &alignmentsvc.ApplyDeltaInput{
			CharacterID: "char-1",
			LawDelta:    3,
			MoralDelta:  -2,
			Info:        "Test",
		}).
		Return(&alignmentsvc.ApplyDeltaOutput{
			Ledger:  s.ledger(25, 20, "Test (+3 laws, -2 morals)"),
			Entry:   "Test (+3 laws, -2 morals)",
			Applied: true,
		}, nil)

	resp, err := s.handler.ApplyDelta(s.ctx, &v1alpha1.ApplyDeltaRequest{
		CharacterId: "char-1",
		LawDelta:    3,
		MoralDelta:  -2,
		Info:        "Test",
	})
	s.Require().NoError(err)
	s.True(resp.Applied)
	s.Equal("Test (+3 laws, -2 morals)", resp.Entry)
	s.Equal(int32(25), resp.Ledger.Alignment.Law)
}

func (s *HandlerTestSuite) TestApplyDelta_ConflictIsAborted() {
	s.mockAlignment.EXPECT().
		ApplyDelta(s.ctx, gomock.Any()).
		Return(nil, errors.Abortedf("alignment for %s changed concurrently", "char-1"))

	_, err := s.handler.ApplyDelta(s.ctx, &v1alpha1.ApplyDeltaRequest{CharacterId: "char-1", LawDelta: 1})
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerTestSuite) TestSetPreset_RequiresFields() {
	_, err := s.handler.SetPreset(s.ctx, &v1alpha1.SetPresetRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(err.Error(), "character_id")
	s.Contains(err.Error(), "preset")
}

func (s *HandlerTestSuite) TestSetPreset_UnknownIsNotApplied() {
	s.mockAlignment.EXPECT().
		SetPreset(s.ctx, &alignmentsvc.SetPresetInput{CharacterID: "char-1", Preset: "Sort Of Good"}).
		Return(&alignmentsvc.SetPresetOutput{Ledger: s.ledger(10, 10)}, nil)

	resp, err := s.handler.SetPreset(s.ctx, &v1alpha1.SetPresetRequest{
		CharacterId: "char-1",
		Preset:      "Sort Of Good",
	})
	s.Require().NoError(err)
	s.False(resp.Applied)
	s.Equal([]string{}, resp.Ledger.History)
}

func (s *HandlerTestSuite) TestListPresets() {
	s.mockAlignment.EXPECT().
		ListPresets(s.ctx, &alignmentsvc.ListPresetsInput{}).
		Return(&alignmentsvc.ListPresetsOutput{
			Presets: alignment.Presets(),
			Warning: alignment.PresetWarning,
		}, nil)

	resp, err := s.handler.ListPresets(s.ctx, &v1alpha1.ListPresetsRequest{})
	s.Require().NoError(err)
	s.Len(resp.Presets, 9)
	s.Equal("Lawful Good", resp.Presets[0].Name)
	s.Equal(&v1alpha1.Alignment{Law: 37, Moral: 37}, resp.Presets[0].Alignment)
	s.Equal(alignment.PresetWarning, resp.Warning)
}

func (s *HandlerTestSuite) TestRegisterCharacter() {
	s.mockAlignment.EXPECT().
		RegisterCharacter(s.ctx, &alignmentsvc.RegisterCharacterInput{
			Name:        "Mira",
			Type:        "character",
			PlayerOwned: true,
			Alignment:   &alignment.Value{Law: 7, Moral: 37},
		}).
		Return(&alignmentsvc.RegisterCharacterOutput{
			Character: &entities.Character{ID: "char-1", Name: "Mira", Type: "character", PlayerOwned: true},
			Ledger:    s.ledger(7, 37),
		}, nil)

	resp, err := s.handler.RegisterCharacter(s.ctx, &v1alpha1.RegisterCharacterRequest{
		Name:        "Mira",
		Type:        "character",
		PlayerOwned: true,
		Alignment:   &v1alpha1.Alignment{Law: 7, Moral: 37},
	})
	s.Require().NoError(err)
	s.Equal("char-1", resp.Character.Id)
	s.Equal("CG", resp.Ledger.Abbreviation)
}

func (s *HandlerTestSuite) TestRegisterCharacter_RequiresName() {
	_, err := s.handler.RegisterCharacter(s.ctx, &v1alpha1.RegisterCharacterRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.mockAlignment.EXPECT().
		ListCharacters(s.ctx, &alignmentsvc.ListCharactersInput{PlayerCharactersOnly: true}).
		Return(&alignmentsvc.ListCharactersOutput{
			Characters: []alignmentsvc.CharacterLedger{
				{Character: &entities.Character{ID: "a", Name: "Ash"}, Ledger: s.ledger(22, 22)},
				{Character: &entities.Character{ID: "b", Name: "Bo"}, Ledger: s.ledger(0, 44)},
			},
		}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, &v1alpha1.ListCharactersRequest{PlayerCharactersOnly: true})
	s.Require().NoError(err)
	s.Require().Len(resp.Characters, 2)
	s.Equal("NN", resp.Characters[0].Ledger.Abbreviation)
	s.Equal("CG", resp.Characters[1].Ledger.Abbreviation)
}

func (s *HandlerTestSuite) TestRenderParty() {
	marker := grid.Marker{
		ID:     "a",
		Name:   "Ash",
		Color:  grid.PaletteColor(0),
		Value:  alignment.Value{Law: 22, Moral: 22},
		X:      225,
		Y:      225,
		Radius: 15.5,
	}
	s.mockGrid.EXPECT().
		RenderParty(s.ctx, &gridsvc.RenderPartyInput{HighlightID: "a"}).
		Return(&gridsvc.RenderPartyOutput{
			PNG:         []byte{1, 2, 3},
			Width:       806,
			Height:      546,
			Origin:      image.Pt(48, 48),
			GridSize:    450,
			Markers:     []grid.Marker{marker},
			Highlighted: true,
		}, nil)

	resp, err := s.handler.RenderParty(s.ctx, &v1alpha1.RenderPartyRequest{HighlightId: "a"})
	s.Require().NoError(err)
	s.Equal([]byte{1, 2, 3}, resp.Png)
	s.Equal(int32(48), resp.OriginX)
	s.True(resp.Highlighted)
	s.Require().Len(resp.Markers, 1)
	s.Equal(grid.Hex(grid.PaletteColor(0)), resp.Markers[0].Color)
}

func (s *HandlerTestSuite) TestHover() {
	s.Run("miss", func() {
		s.mockGrid.EXPECT().
			Hover(s.ctx, &gridsvc.HoverInput{X: 1, Y: 1}).
			Return(&gridsvc.HoverOutput{}, nil)

		resp, err := s.handler.Hover(s.ctx, &v1alpha1.HoverRequest{X: 1, Y: 1})
		s.Require().NoError(err)
		s.False(resp.Found)
		s.Nil(resp.Marker)
		s.Nil(resp.Tooltip)
	})

	s.Run("hit", func() {
		s.mockGrid.EXPECT().
			Hover(s.ctx, &gridsvc.HoverInput{X: 225, Y: 225}).
			Return(&gridsvc.HoverOutput{
				Found:   true,
				Marker:  grid.Marker{ID: "a", Name: "Ash", X: 225, Y: 225, Radius: 15.5},
				Tooltip: grid.Tooltip{Text: "Ash (neutral neutral)", X: 225, Y: 203.5},
			}, nil)

		resp, err := s.handler.Hover(s.ctx, &v1alpha1.HoverRequest{X: 225, Y: 225})
		s.Require().NoError(err)
		s.True(resp.Found)
		s.Equal("a", resp.Marker.Id)
		s.Equal("Ash (neutral neutral)", resp.Tooltip.Text)
	})
}

func (s *HandlerTestSuite) TestRenderTab() {
	s.mockGrid.EXPECT().
		RenderTab(s.ctx, &gridsvc.RenderTabInput{CharacterID: "char-1", ActiveTab: "alignment"}).
		Return(&gridsvc.RenderTabOutput{
			PNG: []byte{9},
			Tab: gridsvc.TabView{
				CharacterID:  "char-1",
				Name:         "Mira",
				Value:        alignment.Value{Law: 14, Moral: 14},
				Abbreviation: "CE",
				LawLabel:     "chaotic",
				MoralLabel:   "evil",
			},
			ActiveTab: "alignment",
		}, nil)

	resp, err := s.handler.RenderTab(s.ctx, &v1alpha1.RenderTabRequest{CharacterId: "char-1", ActiveTab: "alignment"})
	s.Require().NoError(err)
	s.Equal("alignment", resp.ActiveTab)
	s.Equal("CE", resp.Tab.Abbreviation)
	s.Equal(&v1alpha1.Alignment{Law: 14, Moral: 14}, resp.Tab.Alignment)
}

// TestOverTheWire runs the service desc and JSON codec through a real
// grpc server on an in-memory listener.
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterAlignmentServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewAlignmentServiceClient(conn)
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	s.mockAlignment.EXPECT().
		ApplyDelta(gomock.Any(), &alignmentsvc.ApplyDeltaInput{
			CharacterID: "char-1",
			LawDelta:    -1,
			Info:        "Lied",
		}).
		Return(&alignmentsvc.ApplyDeltaOutput{
			Ledger:  s.ledger(21, 22, "Lied (-1 law)"),
			Entry:   "Lied (-1 law)",
			Applied: true,
		}, nil)

	resp, err := client.ApplyDelta(ctx, &v1alpha1.ApplyDeltaRequest{CharacterId: "char-1", LawDelta: -1, Info: "Lied"})
	s.Require().NoError(err)
	s.Equal("Lied (-1 law)", resp.Entry)
	s.Equal([]string{"Lied (-1 law)"}, resp.Ledger.History)

	s.mockGrid.EXPECT().
		RenderParty(gomock.Any(), &gridsvc.RenderPartyInput{}).
		Return(&gridsvc.RenderPartyOutput{PNG: []byte{0x89, 'P', 'N', 'G'}, Width: 806, Height: 546}, nil)

	party, err := client.RenderParty(ctx, &v1alpha1.RenderPartyRequest{})
	s.Require().NoError(err)
	s.Equal([]byte{0x89, 'P', 'N', 'G'}, party.Png)

	_, err = client.GetLedger(ctx, &v1alpha1.GetLedgerRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
