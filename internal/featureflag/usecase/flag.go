package usecase

import (
	"context"
	"fmt"
	"strconv"

	"recipient-srv/internal/featureflag"
)

const keyPrefix = "ff"

// IsTopicNotificationEnabled evaluates the flag from the most specific
// stored override (user, then organization, then environment) and falls back
// to the configured default when none is stored.
func (uc *implUseCase) IsTopicNotificationEnabled(ctx context.Context, input featureflag.Input) (bool, error) {
	return uc.evaluate(ctx, featureflag.KeyIsTopicNotificationEnabled, input, uc.config.TopicNotificationEnabled)
}

func (uc *implUseCase) evaluate(ctx context.Context, key featureflag.Key, input featureflag.Input, fallback bool) (bool, error) {
	keys := overrideKeys(key, input)
	if len(keys) == 0 {
		return fallback, nil
	}

	values, err := uc.redis.MGet(ctx, keys...)
	if err != nil {
		uc.l.Errorf(ctx, "internal.featureflag.usecase.evaluate.MGet: %v", err)
		return false, fmt.Errorf("%w: %v", featureflag.ErrFlagUnavailable, err)
	}

	for i, v := range values {
		if !v.OK {
			continue
		}
		enabled, err := strconv.ParseBool(v.Val)
		if err != nil {
			uc.l.Warnf(ctx, "internal.featureflag.usecase.evaluate: key=%s value=%q: %v", keys[i], v.Val, err)
			return false, fmt.Errorf("%w: %s=%q", featureflag.ErrInvalidFlagValue, keys[i], v.Val)
		}
		return enabled, nil
	}

	return fallback, nil
}

// overrideKeys lists storage keys from most to least specific, skipping
// empty scope parts.
func overrideKeys(key featureflag.Key, input featureflag.Input) []string {
	scopes := []struct {
		name string
		id   string
	}{
		{"user", input.UserID},
		{"organization", input.OrganizationID},
		{"environment", input.EnvironmentID},
	}

	keys := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if s.id == "" {
			continue
		}
		keys = append(keys, fmt.Sprintf("%s:%s:%s:%s", keyPrefix, key, s.name, s.id))
	}
	return keys
}
