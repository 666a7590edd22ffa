package redis

import (
	"encoding/json"
	"fmt"

	"github.com/VicJoao/CardapioRU/db"
	"github.com/VicJoao/CardapioRU/models"
	"github.com/VicJoao/CardapioRU/util"
)

const MEALS_CACHE_KEY_V1 = "cardapio_meals_v1"

// RedisMenuDAO stores the meals snapshot in Redis. Used instead of the file
// cache on deployments without a persistent disk.
type RedisMenuDAO struct {
	client db.RedisClient
}

// NewRedisMenuDAO initializes a RedisMenuDAO with the Redis client.
func NewRedisMenuDAO(client db.RedisClient) *RedisMenuDAO {
	return &RedisMenuDAO{client: client}
}

// SaveMeals stores the snapshot JSON under the meals cache key.
func (dao *RedisMenuDAO) SaveMeals(meals models.MealsResult) error {
	data, err := util.MarshalMealsResult(meals)
	if err != nil {
		return fmt.Errorf("failed to marshal meals snapshot: %w", err)
	}
	if err := dao.client.Set(MEALS_CACHE_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set meals snapshot in redis: %w", err)
	}
	return nil
}

// LoadMeals retrieves the cached snapshot.
func (dao *RedisMenuDAO) LoadMeals() (models.MealsResult, error) {
	value, err := dao.client.Get(MEALS_CACHE_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals snapshot from redis: %w", err)
	}
	var meals models.MealsResult
	if err := json.Unmarshal([]byte(value), &meals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meals snapshot JSON: %w", err)
	}
	return meals, nil
}
