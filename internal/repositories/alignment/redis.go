package alignment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-alignment/internal/redis"
)

const (
	// Key pattern: alignment:{roster}:{character_id}, in the same hash slot
	// as the roster keys
	recordKeyPrefix = "alignment:{roster}:"

	defaultMaxAttempts   = 10
	defaultRetryInterval = 5 * time.Millisecond
	maxRetryInterval     = 100 * time.Millisecond

	errCharacterIDEmpty = "character ID cannot be empty"
	errMutateNil        = "mutate function cannot be nil"
)

// RedisConfig contains configuration for the Redis alignment repository.
type RedisConfig struct {
	Client redisclient.Client
	// MaxAttempts bounds optimistic-lock retries in Update. Defaults to 10.
	MaxAttempts int
	// RetryInterval is the first jittered wait between attempts. It doubles
	// per attempt up to 100ms. Defaults to 5ms.
	RetryInterval time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.MaxAttempts < 0 {
		return errors.InvalidArgument("max attempts cannot be negative")
	}
	if cfg.RetryInterval < 0 {
		return errors.InvalidArgument("retry interval cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client        redisclient.Client
	maxAttempts   int
	retryInterval time.Duration
}

// NewRedis creates a new Redis-backed alignment repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = defaultMaxAttempts
	}
	interval := cfg.RetryInterval
	if interval == 0 {
		interval = defaultRetryInterval
	}

	return &redisRepository{
		client:        cfg.Client,
		maxAttempts:   attempts,
		retryInterval: interval,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record, found, err := r.load(ctx, r.client, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Record: record, Found: found}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	records := make(map[string]alignment.Record, len(input.CharacterIDs))
	if len(input.CharacterIDs) == 0 {
		return &GetManyOutput{Records: records}, nil
	}

	keys := make([]string, len(input.CharacterIDs))
	for i, id := range input.CharacterIDs {
		if id == "" {
			return nil, errors.InvalidArgument(errCharacterIDEmpty)
		}
		keys[i] = recordKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get alignment records")
	}

	for i, raw := range values {
		s, ok := raw.(string)
		if !ok {
			continue
		}
		record, err := decodeRecord(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode alignment record for %s", input.CharacterIDs[i])
		}
		records[input.CharacterIDs[i]] = record
	}

	return &GetManyOutput{Records: records}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record := normalize(input.Record)
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal alignment record")
	}

	// No TTL: a ledger lives as long as its character
	if err := r.client.Set(ctx, recordKeyPrefix+input.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store alignment record")
	}

	return &SetOutput{Record: record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Mutate == nil {
		return nil, errors.InvalidArgument(errMutateNil)
	}

	key := recordKeyPrefix + input.CharacterID
	var output *UpdateOutput

	txf := func(tx *redis.Tx) error {
		current, found, err := r.load(ctx, tx, input.CharacterID)
		if err != nil {
			return err
		}
		if !found {
			current = normalize(input.Default)
		}

		next, changed, err := input.Mutate(current.Clone())
		if err != nil {
			return err
		}
		if !changed {
			output = &UpdateOutput{Record: current, Found: found}
			return nil
		}

		next = normalize(next)
		data, err := json.Marshal(next)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal alignment record")
		}

		// EXEC fails with TxFailedErr if the key changed since WATCH
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		output = &UpdateOutput{Record: next, Applied: true, Found: found}
		return nil
	}

	attempt := 0
	watch := func() (*UpdateOutput, error) {
		attempt++
		err := r.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return output, nil
		case errors.Is(err, redis.TxFailedErr):
			return nil, err
		default:
			return nil, backoff.Permanent(err)
		}
	}

	result, err := backoff.Retry(ctx, watch,
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(uint(r.maxAttempts)),
		backoff.WithNotify(func(_ error, wait time.Duration) {
			slog.WarnContext(ctx, "alignment record changed during update, retrying",
				"character_id", input.CharacterID,
				"attempt", attempt,
				"wait", wait)
		}),
	)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, redis.TxFailedErr) {
		return nil, errors.Abortedf("alignment record for %s changed concurrently %d times", input.CharacterID, attempt).
			WithMeta("character_id", input.CharacterID)
	}

	var customErr *errors.Error
	if errors.As(err, &customErr) {
		return nil, err
	}
	return nil, errors.Wrapf(err, "failed to update alignment record")
}

// newBackOff returns the jittered exponential wait between WATCH attempts
func (r *redisRepository) newBackOff() backoff.BackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     r.retryInterval,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         maxRetryInterval,
	}
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if err := r.client.Del(ctx, recordKeyPrefix+input.CharacterID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete alignment record")
	}

	return &DeleteOutput{}, nil
}

// load reads through either the client or a WATCH transaction.
func (r *redisRepository) load(ctx context.Context, c redis.Cmdable, characterID string) (alignment.Record, bool, error) {
	raw, err := c.Get(ctx, recordKeyPrefix+characterID).Result()
	if err != nil {
		if err == redis.Nil {
			return alignment.Record{}, false, nil
		}
		return alignment.Record{}, false, errors.Wrapf(err, "failed to get alignment record")
	}

	record, err := decodeRecord(raw)
	if err != nil {
		return alignment.Record{}, false, errors.Wrapf(err, "failed to decode alignment record for %s", characterID)
	}

	return record, true, nil
}

func decodeRecord(raw string) (alignment.Record, error) {
	var record alignment.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return alignment.Record{}, errors.WrapWithCode(err, errors.CodeInternal, "corrupt alignment record")
	}
	return normalize(record), nil
}

// normalize clamps the stored values and replaces a nil history so stored
// and returned records always serialize to the same JSON.
func normalize(r alignment.Record) alignment.Record {
	out := r.Clone()
	out.Values = out.Values.Clamped()
	return out
}
