package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
	"github.com/arenaforge/arena-api/internal/pkg/clock"
	"github.com/arenaforge/arena-api/internal/repositories/character"
	"github.com/arenaforge/arena-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{Time: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newCharacter(name, team string) *arena.Character {
	return &arena.Character{
		Name:              name,
		City:              "Metropolis",
		Kind:              arena.KindHero,
		Team:              team,
		Level:             1,
		MaxHealth:         100,
		Health:            100,
		UltimateThreshold: 150,
	}
}

func (s *RedisRepositoryTestSuite) TestCreate_AssignsSequentialIDs() {
	first, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "")})
	s.Require().NoError(err)
	s.Equal(int64(1), first.Character.ID)
	s.Equal(s.now.Unix(), first.Character.CreatedAt)
	s.Equal(s.now.Unix(), first.Character.UpdatedAt)

	second, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Batman", "")})
	s.Require().NoError(err)
	s.Equal(int64(2), second.Character.ID)
}

func (s *RedisRepositoryTestSuite) TestCreate_RejectsPresetID() {
	char := s.newCharacter("Superman", "")
	char.ID = 42

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreate_NilCharacter() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_RoundTrip() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "Justice League")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: created.Character.ID})
	s.Require().NoError(err)
	s.Equal("Superman", got.Character.Name)
	s.Equal("Metropolis", got.Character.City)
	s.Equal(arena.KindHero, got.Character.Kind)
	s.Equal("Justice League", got.Character.Team)
	s.Equal(float64(100), got.Character.Health)
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: 999})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGet_InvalidID() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_PersistsChanges() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "")})
	s.Require().NoError(err)

	char := created.Character
	char.Level = 3
	char.Experience = 50
	char.Health = 42.5

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(int32(3), got.Character.Level)
	s.Equal(int32(50), got.Character.Experience)
	s.Equal(42.5, got.Character.Health)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	char := s.newCharacter("Ghost", "")
	char.ID = 123

	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_MovesTeamIndex() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "Justice League")})
	s.Require().NoError(err)

	char := created.Character
	char.Team = "Avengers"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	old, err := s.repo.ListByTeam(s.ctx, character.ListByTeamInput{Team: "Justice League"})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	current, err := s.repo.ListByTeam(s.ctx, character.ListByTeamInput{Team: "Avengers"})
	s.Require().NoError(err)
	s.Require().Len(current.Characters, 1)
	s.Equal(char.ID, current.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestUpdateMany_PersistsAll() {
	first, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "")})
	s.Require().NoError(err)
	second, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Batman", "")})
	s.Require().NoError(err)

	first.Character.Experience = 40
	second.Character.Experience = 25

	_, err = s.repo.UpdateMany(s.ctx, character.UpdateManyInput{
		Characters: []*arena.Character{first.Character, second.Character},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: first.Character.ID})
	s.Require().NoError(err)
	s.Equal(int32(40), got.Character.Experience)

	got, err = s.repo.Get(s.ctx, character.GetInput{ID: second.Character.ID})
	s.Require().NoError(err)
	s.Equal(int32(25), got.Character.Experience)
}

func (s *RedisRepositoryTestSuite) TestUpdateMany_Empty() {
	out, err := s.repo.UpdateMany(s.ctx, character.UpdateManyInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *RedisRepositoryTestSuite) TestUpdateMany_FailsOnMissingCharacter() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "")})
	s.Require().NoError(err)

	ghost := s.newCharacter("Ghost", "")
	ghost.ID = 999

	_, err = s.repo.UpdateMany(s.ctx, character.UpdateManyInput{
		Characters: []*arena.Character{created.Character, ghost},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_RemovesCharacterAndIndexes() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("Superman", "Justice League")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: created.Character.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: created.Character.ID})
	s.True(errors.IsNotFound(err))

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(all.Characters)

	team, err := s.repo.ListByTeam(s.ctx, character.ListByTeamInput{Team: "Justice League"})
	s.Require().NoError(err)
	s.Empty(team.Characters)
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: 999})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList_OrderedByID() {
	for _, name := range []string{"Superman", "Batman", "Flash"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(name, "")})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal(int64(1), out.Characters[0].ID)
	s.Equal(int64(2), out.Characters[1].ID)
	s.Equal(int64(3), out.Characters[2].ID)
	s.Equal("Superman", out.Characters[0].Name)
}

func (s *RedisRepositoryTestSuite) TestListByTeam_FiltersMembers() {
	league := s.newCharacter("Superman", "Justice League")
	avenger := s.newCharacter("Thor", "Avengers")
	loner := s.newCharacter("Ronin", "")

	for _, char := range []*arena.Character{league, avenger, loner} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByTeam(s.ctx, character.ListByTeamInput{Team: "Avengers"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("Thor", out.Characters[0].Name)
}

func (s *RedisRepositoryTestSuite) TestListByTeam_EmptyTeamName() {
	_, err := s.repo.ListByTeam(s.ctx, character.ListByTeamInput{Team: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
