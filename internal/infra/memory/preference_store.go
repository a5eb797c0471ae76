package memory

import (
	"context"
	"sync"

	"globetrotter-service/internal/domain"
)

// PreferenceStore keeps the theme preference in process memory.
type PreferenceStore struct {
	mu    sync.RWMutex
	theme domain.Theme
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{}
}

func (s *PreferenceStore) Theme(_ context.Context) (domain.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.theme == "" {
		return domain.ThemeLight, nil
	}
	return s.theme, nil
}

func (s *PreferenceStore) SetTheme(_ context.Context, theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
