package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository abstracts how solo quiz sessions are stored.
type SessionRepository interface {
	Add(session *QuizSession)
	Get(id string) (*QuizSession, bool)
	Delete(id string)
}

// CatalogRepository serves the country catalog (cached in-memory or Redis).
type CatalogRepository interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// LeaderboardStore is an append-only log of finished quiz results. Ranking is
// applied at read time by consumers, never at write time.
type LeaderboardStore interface {
	SaveScore(ctx context.Context, result domain.QuizResult) error
	HighScores(ctx context.Context) ([]domain.QuizResult, error)
}

// QuizService drives solo quiz sessions from name submission to the final
// leaderboard write.
type QuizService struct {
	sessions SessionRepository
	catalog  CatalogRepository
	scores   LeaderboardStore

	questionCount      int
	optionsPerQuestion int

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// DefaultQuestionCount is the standard quiz length.
const DefaultQuestionCount = 10

func NewQuizService(sessions SessionRepository, catalog CatalogRepository, scores LeaderboardStore, questionCount, optionsPerQuestion int) *QuizService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	if optionsPerQuestion < 2 {
		optionsPerQuestion = DefaultOptionsPerQuestion
	}
	return &QuizService{
		sessions:           sessions,
		catalog:            catalog,
		scores:             scores,
		questionCount:      questionCount,
		optionsPerQuestion: optionsPerQuestion,
		rnd:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateSession registers a new session for the named player.
func (s *QuizService) CreateSession(playerName string) (*QuizSession, error) {
	session := NewQuizSession(uuid.NewString())
	if err := session.submitName(playerName); err != nil {
		return nil, err
	}
	s.sessions.Add(session)
	return session, nil
}

// Start generates the question set for the chosen difficulty and begins play.
func (s *QuizService) Start(ctx context.Context, sessionID string, difficulty domain.Difficulty) ([]domain.QuizQuestion, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	catalog, err := s.catalog.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.generate(catalog, difficulty)
	if err != nil {
		return nil, err
	}
	if err := session.start(difficulty, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitAnswer scores one answer. The leaderboard write happens exactly once,
// on the transition into the complete state.
func (s *QuizService) SubmitAnswer(ctx context.Context, sessionID, countryID string) (domain.AnswerOutcome, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.AnswerOutcome{}, domain.ErrSessionNotFound
	}
	outcome, result, err := session.answer(countryID)
	if err != nil {
		return domain.AnswerOutcome{}, err
	}
	if result != nil {
		if err := s.scores.SaveScore(ctx, *result); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// Restart returns a completed session to difficulty selection.
func (s *QuizService) Restart(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.restart()
}

// Session exposes a session for transports that render its state.
func (s *QuizService) Session(sessionID string) (*QuizSession, bool) {
	return s.sessions.Get(sessionID)
}

func (s *QuizService) generate(catalog []domain.Country, difficulty domain.Difficulty) ([]domain.QuizQuestion, error) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return GenerateQuiz(s.rnd, catalog, s.questionCount, difficulty, s.optionsPerQuestion)
}
