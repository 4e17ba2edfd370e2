package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-alignment/internal/pkg/clock/mock"
	character "github.com/KirkDiggler/rpg-alignment/internal/repositories/character"
	"github.com/KirkDiggler/rpg-alignment/internal/testutils"
)

const (
	testCharID  = "char_123"
	testCharKey = "character:{roster}:char_123"
	testIndex   = "character:{roster}:all"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      character.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create", func() {
		output, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{
			ID:          testCharID,
			Name:        "Valeria",
			Type:        entities.CharacterTypeCharacter,
			PlayerOwned: true,
		}})
		s.Require().NoError(err)
		s.Equal(s.now, output.Character.CreatedAt)
		s.Equal(s.now, output.Character.UpdatedAt)
		s.True(s.mr.Exists(testCharKey))

		members, err := s.mr.Members(testIndex)
		s.Require().NoError(err)
		s.Equal([]string{testCharID}, members)
	})

	s.Run("error when character already exists", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{ID: testCharID}})
		s.Require().Error(err)
		s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
	})

	s.Run("error when character is nil", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("error when ID is empty", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{Name: "x"}})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{
		ID:     testCharID,
		Name:   "Valeria",
		Type:   entities.CharacterTypeCharacter,
		Traits: []string{"darkvision"},
	}})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal("Valeria", output.Character.Name)
	s.Equal([]string{"darkvision"}, output.Character.Traits)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsCreatedAt() {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{
		ID:        testCharID,
		Name:      "Valeria",
		CreatedAt: created,
	}})
	s.Require().NoError(err)

	output, err := s.repo.Update(s.ctx, character.UpdateInput{Character: &entities.Character{
		ID:     testCharID,
		Name:   "Valeria the Bold",
		Traits: []string{"lg"},
	}})
	s.Require().NoError(err)
	s.Equal(created, output.Character.CreatedAt)
	s.Equal(s.now, output.Character.UpdatedAt)

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: &entities.Character{ID: "char_missing"}})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{ID: testCharID}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(testCharKey))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListOrdering() {
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	roster := []*entities.Character{
		{ID: "char_c", Name: "Cleric", Type: entities.CharacterTypeCharacter, PlayerOwned: true, CreatedAt: base.Add(time.Hour)},
		{ID: "char_b", Name: "Bard", Type: entities.CharacterTypeCharacter, PlayerOwned: true, CreatedAt: base},
		{ID: "char_a", Name: "Archer", Type: entities.CharacterTypeCharacter, PlayerOwned: true, CreatedAt: base},
		{ID: "char_n", Name: "Innkeeper", Type: entities.CharacterTypeNPC, CreatedAt: base},
	}
	for _, c := range roster {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"char_a", "char_b", "char_n", "char_c"}, ids(all.Characters))

	players, err := s.repo.List(s.ctx, character.ListInput{PlayerCharactersOnly: true})
	s.Require().NoError(err)
	s.Equal([]string{"char_a", "char_b", "char_c"}, ids(players.Characters))
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndex() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{ID: testCharID}})
	s.Require().NoError(err)
	_, err = s.mr.SAdd(testIndex, "char_gone")
	s.Require().NoError(err)

	output, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(output.Characters, 1)

	members, err := s.mr.Members(testIndex)
	s.Require().NoError(err)
	s.Equal([]string{testCharID}, members)
}

func (s *RedisRepositoryTestSuite) TestKeysShareOneHashSlot() {
	for _, id := range []string{"char_a", "char_b"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{ID: id}})
		s.Require().NoError(err)
	}

	keys := s.mr.Keys()
	s.Len(keys, 3)
	for _, key := range keys {
		s.Equal("roster", testutils.HashTag(key), key)
	}
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(output.Characters)
}

func ids(characters []*entities.Character) []string {
	out := make([]string, len(characters))
	for i, c := range characters {
		out[i] = c.ID
	}
	return out
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
