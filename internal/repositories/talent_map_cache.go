package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// TalentMapCacheRepository caches exported talent maps in Redis
type TalentMapCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached maps
}

// NewTalentMapCacheRepository creates a new repository instance with the given TTL
func NewTalentMapCacheRepository(client *redis.Client, expiration time.Duration) *TalentMapCacheRepository {
	return &TalentMapCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func talentMapKey(userID uuid.UUID) string {
	return "talent_map:" + userID.String()
}

// Get returns the cached map of the account, or nil on a cache miss
func (r *TalentMapCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.TalentMap, error) {
	key := talentMapKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var tm models.TalentMap
	if err := json.Unmarshal(val, &tm); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", tm,
		"error", nil,
	)

	return &tm, nil
}

// Set caches the map of the account with expiration
func (r *TalentMapCacheRepository) Set(ctx context.Context, userID uuid.UUID, tm *models.TalentMap) error {
	key := talentMapKey(userID)

	data, err := json.Marshal(tm)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", string(data),
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached map of the account
func (r *TalentMapCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := talentMapKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
