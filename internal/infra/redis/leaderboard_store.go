package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"globetrotter-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const resultsKey = "quiz:results"

// LeaderboardStore keeps finished quiz results as a Redis list, in append
// order. The list is the durable high-score log; ordering for display is a
// read-time transform applied by consumers.
type LeaderboardStore struct {
	client *redis.Client
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

func (s *LeaderboardStore) SaveScore(ctx context.Context, result domain.QuizResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := s.client.RPush(ctx, resultsKey, data).Err(); err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) HighScores(ctx context.Context) ([]domain.QuizResult, error) {
	raw, err := s.client.LRange(ctx, resultsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	results := make([]domain.QuizResult, 0, len(raw))
	for _, item := range raw {
		var result domain.QuizResult
		if err := json.Unmarshal([]byte(item), &result); err != nil {
			continue // skip entries written by incompatible versions
		}
		results = append(results, result)
	}
	return results, nil
}
