// Package prefs persists per-client UI preferences.
package prefs

import (
	"context"
	"fmt"

	"eliezerclean/models"

	"github.com/go-redis/redis/v8"
)

const prefsPrefix = "prefs:"

// Store keeps preferences in Redis, keyed by client ID. No TTL; a theme
// choice should survive indefinitely.
type Store struct {
	Client *redis.Client
}

// Get returns the stored preferences, defaulting to the light theme.
func (s *Store) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	theme, err := s.Client.Get(ctx, prefsPrefix+clientID).Result()
	if err == redis.Nil {
		return models.Preferences{Theme: models.ThemeLight}, nil
	}
	if err != nil {
		return models.Preferences{}, err
	}
	return models.Preferences{Theme: theme}, nil
}

// Set validates and stores the preferences.
func (s *Store) Set(ctx context.Context, clientID string, p models.Preferences) error {
	if p.Theme != models.ThemeLight && p.Theme != models.ThemeDark {
		return fmt.Errorf("unknown theme %q", p.Theme)
	}
	return s.Client.Set(ctx, prefsPrefix+clientID, p.Theme, 0).Err()
}
