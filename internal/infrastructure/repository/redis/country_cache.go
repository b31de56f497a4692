package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/redis/go-redis/v9"
)

type CountryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCountryCache(client *redis.Client, ttl time.Duration) *CountryCache {
	return &CountryCache{Client: client, TTL: ttl}
}

func (c *CountryCache) Key(name string) string {
	return fmt.Sprintf("countries:search:%s", strings.ToLower(strings.TrimSpace(name)))
}

func (c *CountryCache) Get(ctx context.Context, name string) ([]domain.Country, bool, error) {
	raw, err := c.Client.Get(ctx, c.Key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.NewDomainError(domain.ErrCodeExternal, "redis is not responding", err)
	}

	var countries []domain.Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		// a corrupt entry behaves like a miss and is overwritten by the next Set
		return nil, false, nil
	}
	return countries, true, nil
}

func (c *CountryCache) Set(ctx context.Context, name string, countries []domain.Country) error {
	raw, err := json.Marshal(countries)
	if err != nil {
		return domain.NewDomainError(domain.ErrCodeInternal, "failed to encode countries", err)
	}
	if err := c.Client.Set(ctx, c.Key(name), raw, c.TTL).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodeExternal, "redis is not responding", err)
	}
	return nil
}
