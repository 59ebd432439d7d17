package redis

import (
	"context"
	"fmt"
)

func (r *redisImpl) MGet(ctx context.Context, keys ...string) ([]Value, error) {
	raw, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	res := make([]Value, len(raw))
	for i, v := range raw {
		switch val := v.(type) {
		case nil:
		case string:
			res[i] = Value{Val: val, OK: true}
		default:
			res[i] = Value{Val: fmt.Sprint(val), OK: true}
		}
	}
	return res, nil
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}
