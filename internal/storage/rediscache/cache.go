// Package rediscache provides a shared atomic stock counter for admission
// control across processes, plus a publisher for the stock-changed signal.
package rediscache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "bakery:stock:"

// reserveScript decrements the counter only when enough stock remains, so
// the check-and-decrement is a single atomic step.
var reserveScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return 0
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

type StockCache struct {
	client *redis.Client
}

func NewStockCache(client *redis.Client) *StockCache {
	return &StockCache{client: client}
}

// Reserve atomically decrements the cached stock for name. It returns false
// when the cached stock is below quantity or the key is unknown.
func (c *StockCache) Reserve(ctx context.Context, name string, quantity int) (bool, error) {
	result, err := reserveScript.Run(ctx, c.client, []string{stockKeyPrefix + name}, quantity).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

// Prime sets the cached counter to the authoritative store value.
func (c *StockCache) Prime(ctx context.Context, name string, quantity int) error {
	return c.client.Set(ctx, stockKeyPrefix+name, quantity, 0).Err()
}
