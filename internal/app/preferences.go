package app

import (
	"context"

	"globetrotter-service/internal/domain"
)

// PreferenceStore persists the single theme preference. Implementations
// return ThemeLight when nothing has been stored yet.
type PreferenceStore interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}
