package memory

import (
	"context"
	"sync"

	"globetrotter-service/internal/domain"
)

// LeaderboardStore is an in-memory append log of quiz results. Results are
// never deduplicated or reordered on write; ranking happens at read time.
type LeaderboardStore struct {
	mu      sync.RWMutex
	results []domain.QuizResult
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) SaveScore(_ context.Context, result domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *LeaderboardStore) HighScores(_ context.Context) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]domain.QuizResult, len(s.results))
	copy(results, s.results)
	return results, nil
}
