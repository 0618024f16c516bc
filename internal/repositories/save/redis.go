package save

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/pkg/clock"
	redisclient "github.com/forgebound/forge-api/internal/redis"
)

const (
	slotKeyPrefix    = "save:slot:"
	versionKeyPrefix = "save:version:"

	errUserIDEmpty = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis save repository.
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

// NewRedis creates a new Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, slotKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no save for user %s", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get save slot")
	}

	var slot entities.SaveSlot
	if err := json.Unmarshal([]byte(result), &slot); err != nil {
		// A corrupt slot reads as "no data" rather than a crash.
		slog.WarnContext(ctx, "discarding unreadable save slot",
			"user_id", input.UserID,
			"error", err.Error())
		return nil, errors.NotFoundf("no save for user %s", input.UserID)
	}

	return &GetOutput{Slot: &slot}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if len(input.GameState) == 0 {
		return nil, errors.InvalidArgument("game state cannot be empty")
	}
	if !json.Valid(input.GameState) {
		return nil, errors.InvalidArgument("game state must be valid JSON")
	}

	// The version counter outlives the slot so versions keep
	// advancing across delete/re-save cycles.
	version, err := r.client.Incr(ctx, versionKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to bump save version")
	}

	slot := &entities.SaveSlot{
		UserID:    input.UserID,
		GameState: input.GameState,
		SavedAt:   r.clock.Now().UnixMilli(),
		Version:   version,
	}

	data, err := json.Marshal(slot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save slot")
	}

	if err := r.client.Set(ctx, slotKeyPrefix+input.UserID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write save slot")
	}

	return &PutOutput{Slot: slot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	removed, err := r.client.Del(ctx, slotKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save slot")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("no save for user %s", input.UserID)
	}

	return &DeleteOutput{}, nil
}
