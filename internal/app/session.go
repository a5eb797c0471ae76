package app

import (
	"strings"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
)

// SessionState tracks where a solo quiz session is in its lifecycle.
type SessionState string

const (
	StateAwaitingName       SessionState = "awaiting_name"
	StateAwaitingDifficulty SessionState = "awaiting_difficulty"
	StateInProgress         SessionState = "in_progress"
	StateComplete           SessionState = "complete"
)

// QuizSession is the single-player quiz state machine. Questions are answered
// strictly in generation order; there is no going back or skipping.
type QuizSession struct {
	id  string
	now func() time.Time

	mu         sync.Mutex
	state      SessionState
	playerName string
	difficulty domain.Difficulty
	questions  []domain.QuizQuestion
	index      int
	score      int
	startedAt  time.Time
	result     *domain.QuizResult
}

// NewQuizSession creates a session waiting for a player name.
func NewQuizSession(id string) *QuizSession {
	return NewQuizSessionWithClock(id, time.Now)
}

// NewQuizSessionWithClock allows deterministic timestamps in tests.
func NewQuizSessionWithClock(id string, now func() time.Time) *QuizSession {
	return &QuizSession{id: id, now: now, state: StateAwaitingName}
}

func (s *QuizSession) ID() string { return s.id }

func (s *QuizSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *QuizSession) PlayerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerName
}

func (s *QuizSession) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Result returns the finished result, or nil before completion.
func (s *QuizSession) Result() *domain.QuizResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil
	}
	result := *s.result
	return &result
}

// submitName moves awaiting_name to awaiting_difficulty. A name that is empty
// after trimming is rejected without a state change.
func (s *QuizSession) submitName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingName {
		return domain.ErrInvalidState
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	s.playerName = name
	s.state = StateAwaitingDifficulty
	return nil
}

// start records the start time and installs a freshly generated question set.
func (s *QuizSession) start(difficulty domain.Difficulty, questions []domain.QuizQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingDifficulty {
		return domain.ErrInvalidState
	}
	s.difficulty = difficulty
	s.questions = questions
	s.index = 0
	s.score = 0
	s.result = nil
	s.startedAt = s.now()
	s.state = StateInProgress
	return nil
}

// answer scores the current question by identity equality and always advances.
// On the last question it builds the immutable QuizResult; answering a finished
// session is a no-op so duplicate submissions cannot corrupt the result.
func (s *QuizSession) answer(countryID string) (domain.AnswerOutcome, *domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateComplete:
		return domain.AnswerOutcome{Finished: true, Score: s.score}, nil, nil
	case StateInProgress:
	default:
		return domain.AnswerOutcome{}, nil, domain.ErrInvalidState
	}

	correct := s.questions[s.index].CorrectID == countryID
	if correct {
		s.score++
	}
	s.index++
	if s.index < len(s.questions) {
		return domain.AnswerOutcome{Correct: correct, Score: s.score}, nil, nil
	}

	end := s.now()
	result := domain.QuizResult{
		PlayerName:    s.playerName,
		Score:         s.score,
		MaxScore:      len(s.questions),
		TimeInSeconds: int(end.Sub(s.startedAt).Seconds()),
		Date:          end,
		Difficulty:    s.difficulty,
	}
	s.result = &result
	s.state = StateComplete
	return domain.AnswerOutcome{Correct: correct, Finished: true, Score: s.score}, &result, nil
}

// restart returns a completed session to difficulty selection. The next start
// generates a fresh question set.
func (s *QuizSession) restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateComplete {
		return domain.ErrInvalidState
	}
	s.questions = nil
	s.index = 0
	s.score = 0
	s.result = nil
	s.state = StateAwaitingDifficulty
	return nil
}
