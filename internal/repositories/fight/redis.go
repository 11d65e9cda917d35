package fight

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
	fightKeyPrefix = "fight:"
	fightIndexKey  = "fights"
	idCounterKey   = "fight:next_id"

	// Error messages
	errRecordNil    = "fight record cannot be nil"
	errRecordIDZero = "fight ID must be positive"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for fight records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new fight record under the next id from a monotonic counter
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID != 0 {
		return nil, errors.InvalidArgument("fight ID is assigned by the repository")
	}

	id, err := r.client.Incr(ctx, idCounterKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign fight ID")
	}

	now := r.clock.Now().Unix()
	input.Record.ID = id
	input.Record.CreatedAt = now
	input.Record.UpdatedAt = now

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal fight record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, fightKey(id), data, 0)
	pipe.SAdd(ctx, fightIndexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store fight record")
	}

	return &CreateOutput{Record: input.Record}, nil
}

// Get retrieves a fight record by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errRecordIDZero)
	}

	result, err := r.client.Get(ctx, fightKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("fight with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get fight record")
	}

	var record arena.FightRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal fight record")
	}

	return &GetOutput{Record: &record}, nil
}

// Update replaces an existing fight record
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID <= 0 {
		return nil, errors.InvalidArgument(errRecordIDZero)
	}

	// Existence check keeps Update from resurrecting deleted records
	if _, err := r.Get(ctx, GetInput{ID: input.Record.ID}); err != nil {
		return nil, err
	}

	input.Record.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal fight record")
	}

	if err := r.client.Set(ctx, fightKey(input.Record.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update fight record")
	}

	return &UpdateOutput{Record: input.Record}, nil
}

// Delete removes a fight record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errRecordIDZero)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, fightKey(input.ID))
	pipe.SRem(ctx, fightIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete fight record")
	}

	return &DeleteOutput{}, nil
}

// List retrieves all fight records, ordered by ID
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, fightIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get fight index")
	}

	records := make([]*arena.FightRecord, 0, len(ids))
	for _, id := range ids {
		result, err := r.client.Get(ctx, fightKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				slog.WarnContext(ctx, "fight record not found, cleaning up index",
					"fight_id", id)
				r.client.SRem(ctx, fightIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get fight %s", id)
		}

		var record arena.FightRecord
		if err := json.Unmarshal([]byte(result), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal fight record")
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return &ListOutput{Records: records}, nil
}

func fightKey(id int64) string {
	return fmt.Sprintf("%s%d", fightKeyPrefix, id)
}
