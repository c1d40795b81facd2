package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shoply_back_end/internal/models"
)

const (
	productsKey = "products:all"
	productsTTL = time.Hour
)

// ProductCache : cache Redis de la liste complète des produits, invalidé à
// chaque écriture catalogue. Un cache nil ou sans client est inactif et
// chaque lecture retombe sur la base.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

func (c *ProductCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, productsKey).Result()
	if err != nil || val == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, products []models.Product) {
	if c == nil || c.rdb == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		c.rdb.Set(ctx, productsKey, data, productsTTL)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, productsKey)
}
