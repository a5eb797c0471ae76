package app

import (
	"sort"

	"globetrotter-service/internal/domain"
)

// RankResults orders results for display: score descending, then elapsed time
// ascending (faster completion wins ties). The input is not modified; stores
// keep an unordered append log and only readers sort.
func RankResults(results []domain.QuizResult) []domain.QuizResult {
	ranked := make([]domain.QuizResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].TimeInSeconds < ranked[j].TimeInSeconds
	})
	return ranked
}

// FilterByDifficulty keeps only results for one difficulty tier.
func FilterByDifficulty(results []domain.QuizResult, difficulty domain.Difficulty) []domain.QuizResult {
	filtered := make([]domain.QuizResult, 0, len(results))
	for _, r := range results {
		if r.Difficulty == difficulty {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// TopN truncates a ranked list to its first n entries.
func TopN(results []domain.QuizResult, n int) []domain.QuizResult {
	if n < 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
