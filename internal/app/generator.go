package app

import (
	"fmt"
	"math/rand"

	"globetrotter-service/internal/domain"
)

// DefaultOptionsPerQuestion is the standard four-choice flag question.
const DefaultOptionsPerQuestion = 4

// GenerateQuiz builds count multiple-choice questions over the catalog.
// Correct answers are drawn without replacement from the difficulty's pool, so
// no country is asked twice in one quiz. Decoys are drawn without replacement
// from the full catalog and the option order is shuffled.
func GenerateQuiz(rnd *rand.Rand, catalog []domain.Country, count int, difficulty domain.Difficulty, optionsPerQuestion int) ([]domain.QuizQuestion, error) {
	if count <= 0 || optionsPerQuestion < 2 {
		return nil, domain.ErrInvalidInput
	}

	pool := correctAnswerPool(catalog, difficulty)
	if len(pool) < count {
		return nil, fmt.Errorf("difficulty %s has %d countries, need %d: %w",
			difficulty, len(pool), count, domain.ErrInsufficientData)
	}

	// A tiny catalog degrades the decoy count instead of failing.
	decoysPerQuestion := optionsPerQuestion - 1
	if len(catalog)-1 < decoysPerQuestion {
		decoysPerQuestion = len(catalog) - 1
	}
	if decoysPerQuestion < 1 {
		return nil, fmt.Errorf("catalog of %d cannot fill any options: %w",
			len(catalog), domain.ErrInsufficientData)
	}

	questions := make([]domain.QuizQuestion, 0, count)
	for _, idx := range rnd.Perm(len(pool))[:count] {
		correct := pool[idx]
		options := make([]domain.Country, 0, decoysPerQuestion+1)
		options = append(options, correct)
		for _, c := range rnd.Perm(len(catalog)) {
			if len(options) == decoysPerQuestion+1 {
				break
			}
			if catalog[c].CCA3 == correct.CCA3 {
				continue
			}
			options = append(options, catalog[c])
		}
		rnd.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		questions = append(questions, domain.QuizQuestion{
			Correct:   correct,
			CorrectID: correct.CCA3,
			Options:   options,
		})
	}
	return questions, nil
}
