package character

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
	"github.com/arenaforge/arena-api/internal/pkg/clock"
	redisclient "github.com/arenaforge/arena-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	characterIndexKey  = "characters"
	teamIndexPrefix    = "character:team:"
	idCounterKey       = "character:next_id"

	// Error messages
	errCharacterNil    = "character cannot be nil"
	errCharacterIDZero = "character ID must be positive"
	errTeamEmpty       = "team name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID != 0 {
		return nil, errors.InvalidArgument("character ID is assigned by the repository")
	}

	// Assign the next id from a monotonic counter
	id, err := r.client.Incr(ctx, idCounterKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign character ID")
	}

	now := r.clock.Now().Unix()
	input.Character.ID = id
	input.Character.CreatedAt = now
	input.Character.UpdatedAt = now

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(id), data, 0) // No TTL for characters
	pipe.SAdd(ctx, characterIndexKey, id)
	if input.Character.Team != "" {
		pipe.SAdd(ctx, teamIndexPrefix+input.Character.Team, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	result, err := r.client.Get(ctx, characterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char arena.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &GetOutput{Character: &char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID <= 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}
	existing := getOutput.Character

	input.Character.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(input.Character.ID), data, 0)

	// Update team index if membership changed
	if existing.Team != input.Character.Team {
		if existing.Team != "" {
			pipe.SRem(ctx, teamIndexPrefix+existing.Team, input.Character.ID)
		}
		if input.Character.Team != "" {
			pipe.SAdd(ctx, teamIndexPrefix+input.Character.Team, input.Character.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error) {
	if len(input.Characters) == 0 {
		return &UpdateManyOutput{}, nil
	}

	now := r.clock.Now().Unix()

	pipe := r.client.TxPipeline()
	for _, char := range input.Characters {
		if char == nil {
			return nil, errors.InvalidArgument(errCharacterNil)
		}
		if char.ID <= 0 {
			return nil, errors.InvalidArgument(errCharacterIDZero)
		}

		getOutput, err := r.Get(ctx, GetInput{ID: char.ID})
		if err != nil {
			return nil, err
		}
		existing := getOutput.Character

		char.UpdatedAt = now
		data, err := json.Marshal(char)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal character data")
		}

		pipe.Set(ctx, characterKey(char.ID), data, 0)
		if existing.Team != char.Team {
			if existing.Team != "" {
				pipe.SRem(ctx, teamIndexPrefix+existing.Team, char.ID)
			}
			if char.Team != "" {
				pipe.SAdd(ctx, teamIndexPrefix+char.Team, char.ID)
			}
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update characters")
	}

	return &UpdateManyOutput{Characters: input.Characters}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	char := getOutput.Character

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	pipe.SRem(ctx, characterIndexKey, input.ID)
	if char.Team != "" {
		pipe.SRem(ctx, teamIndexPrefix+char.Team, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	characters, err := r.listByIndex(ctx, characterIndexKey)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByTeam(ctx context.Context, input ListByTeamInput) (*ListByTeamOutput, error) {
	if input.Team == "" {
		return nil, errors.InvalidArgument(errTeamEmpty)
	}

	indexKey := teamIndexPrefix + input.Team
	slog.DebugContext(ctx, "listing characters by team index",
		"team", input.Team,
		"index_key", indexKey)

	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by team index",
			"team", input.Team,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	return &ListByTeamOutput{Characters: characters}, nil
}

// listByIndex is a helper function to list characters by any index.
// Results are ordered by ID since Redis sets are unordered.
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*arena.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*arena.Character, 0, len(ids))
	for _, id := range ids {
		result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
		if err != nil {
			// If the character is gone, clean up the index
			if err == redis.Nil {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}

		var char arena.Character
		if err := json.Unmarshal([]byte(result), &char); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character data")
		}
		characters = append(characters, &char)
	}

	sort.Slice(characters, func(i, j int) bool {
		return characters[i].ID < characters[j].ID
	})

	return characters, nil
}

func characterKey(id int64) string {
	return fmt.Sprintf("%s%d", characterKeyPrefix, id)
}
