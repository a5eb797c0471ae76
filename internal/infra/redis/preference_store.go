package redis

import (
	"context"

	"globetrotter-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const themeKey = "preferences:theme"

// PreferenceStore persists the theme preference in Redis.
type PreferenceStore struct {
	client *redis.Client
}

func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

func (s *PreferenceStore) Theme(ctx context.Context) (domain.Theme, error) {
	value, err := s.client.Get(ctx, themeKey).Result()
	if err == redis.Nil {
		return domain.ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		return domain.ThemeLight, nil
	}
	return theme, nil
}

func (s *PreferenceStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.client.Set(ctx, themeKey, string(theme), 0).Err()
}
