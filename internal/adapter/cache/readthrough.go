package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"campaignfinance/internal/domain"
)

const keyPrefix = "cf:v1:"

type core struct {
	store  Store
	ttl    time.Duration
	logger zerolog.Logger
}

func (c core) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &c.logger
}

// readThrough serves key from the store, falling back to load on a miss or
// any cache failure. Loader errors are returned and never cached.
func readThrough[T any](ctx context.Context, c core, key string, load func(context.Context) (T, error)) (T, error) {
	key = keyPrefix + key
	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			c.log(ctx).Debug().Str("key", key).Msg("cache hit")
			return v, nil
		}
		c.log(ctx).Warn().Str("key", key).Msg("cache entry undecodable")
	case !errors.Is(err, ErrMiss):
		c.log(ctx).Warn().Err(err).Str("key", key).Msg("cache get failed")
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		c.log(ctx).Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return v, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		c.log(ctx).Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return v, nil
}

func searchKey(kind string, q domain.NameQuery, page domain.PageRequest) string {
	return fmt.Sprintf("%s:search:%q:%g:%d:%d", kind, q.Name, q.Threshold, page.Limit, page.Offset)
}

func pageKey(kind, id string, page domain.PageRequest) string {
	return fmt.Sprintf("%s:%q:%d:%d", kind, id, page.Limit, page.Offset)
}
