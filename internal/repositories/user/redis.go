package user

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/pkg/clock"
	redisclient "github.com/forgebound/forge-api/internal/redis"
)

const (
	userKeyPrefix     = "user:"
	usernameKeyPrefix = "user:username:"
	emailKeyPrefix    = "user:email:"

	// Error messages
	errUserNil     = "user cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
	errLoginEmpty  = "login cannot be empty"
)

// record is the stored shape. entities.User hides the password hash
// from JSON; storage must keep it.
type record struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

func toRecord(u *entities.User) record {
	return record{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r record) toEntity() *entities.User {
	return &entities.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis user repository.
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

// NewRedis creates a new Redis-backed user repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.User.Username == "" || input.User.Email == "" {
		return nil, errors.InvalidArgument("username and email are required")
	}

	usernameKey := usernameKeyPrefix + strings.ToLower(input.User.Username)
	emailKey := emailKeyPrefix + strings.ToLower(input.User.Email)

	// Uniqueness is claimed through the index keys. SETNX both before
	// writing the record; losing either claim means a duplicate.
	ok, err := r.client.SetNX(ctx, usernameKey, input.User.ID, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim username")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("username %s is taken", input.User.Username)
	}

	ok, err = r.client.SetNX(ctx, emailKey, input.User.ID, 0).Result()
	if err != nil {
		r.client.Del(ctx, usernameKey)
		return nil, errors.Wrapf(err, "failed to claim email")
	}
	if !ok {
		r.client.Del(ctx, usernameKey)
		return nil, errors.AlreadyExistsf("email %s is taken", input.User.Email)
	}

	data, err := json.Marshal(toRecord(input.User))
	if err != nil {
		r.client.Del(ctx, usernameKey, emailKey)
		return nil, errors.Wrapf(err, "failed to marshal user")
	}

	if err := r.client.Set(ctx, userKeyPrefix+input.User.ID, data, 0).Err(); err != nil {
		r.client.Del(ctx, usernameKey, emailKey)
		return nil, errors.Wrapf(err, "failed to create user")
	}

	return &CreateOutput{User: input.User}, nil
}

func (r *redisRepository) GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, userKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user")
	}

	return &GetByIDOutput{User: rec.toEntity()}, nil
}

func (r *redisRepository) GetByLogin(ctx context.Context, input GetByLoginInput) (*GetByLoginOutput, error) {
	login := strings.ToLower(strings.TrimSpace(input.UsernameOrEmail))
	if login == "" {
		return nil, errors.InvalidArgument(errLoginEmpty)
	}

	id, err := r.client.Get(ctx, usernameKeyPrefix+login).Result()
	if err == redis.Nil {
		id, err = r.client.Get(ctx, emailKeyPrefix+login).Result()
	}
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no user for login %s", input.UsernameOrEmail)
		}
		return nil, errors.Wrapf(err, "failed to resolve login")
	}

	out, err := r.GetByID(ctx, GetByIDInput{ID: id})
	if err != nil {
		return nil, err
	}
	return &GetByLoginOutput{User: out.User}, nil
}
