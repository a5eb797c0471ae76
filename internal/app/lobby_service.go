package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
)

// LobbyRepository abstracts how lobbies are stored. The in-process
// implementation is the reference behavior; a networked one can substitute
// without touching callers.
type LobbyRepository interface {
	Create(difficulty domain.Difficulty, questions []domain.QuizQuestion) *Lobby
	Get(code string) (*Lobby, bool)
	DeleteIfEmpty(code string)
}

// LobbyService contains the multiplayer quiz use cases.
type LobbyService struct {
	lobbies LobbyRepository
	catalog CatalogRepository

	questionCount      int
	optionsPerQuestion int

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewLobbyService(lobbies LobbyRepository, catalog CatalogRepository, questionCount, optionsPerQuestion int) *LobbyService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	if optionsPerQuestion < 2 {
		optionsPerQuestion = DefaultOptionsPerQuestion
	}
	return &LobbyService{
		lobbies:            lobbies,
		catalog:            catalog,
		questionCount:      questionCount,
		optionsPerQuestion: optionsPerQuestion,
		rnd:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create opens a lobby with a freshly generated shared question set.
func (s *LobbyService) Create(ctx context.Context, difficulty domain.Difficulty) (*Lobby, error) {
	catalog, err := s.catalog.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	s.rndMu.Lock()
	questions, err := GenerateQuiz(s.rnd, catalog, s.questionCount, difficulty, s.optionsPerQuestion)
	s.rndMu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.lobbies.Create(difficulty, questions), nil
}

// Join registers or refreshes a player in a lobby.
func (s *LobbyService) Join(code, userID, displayName string) (domain.Scoreboard, error) {
	lobby, err := s.lookup(code)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	return lobby.join(userID, displayName), nil
}

// Lobby returns the lobby so transports can send the shared questions.
func (s *LobbyService) Lobby(code string) (*Lobby, error) {
	return s.lookup(code)
}

// SubmitAnswer records a player's answer to their current question.
func (s *LobbyService) SubmitAnswer(code, userID, countryID string) (domain.AnswerOutcome, domain.Scoreboard, error) {
	lobby, err := s.lookup(code)
	if err != nil {
		return domain.AnswerOutcome{}, domain.Scoreboard{}, err
	}
	return lobby.applyAnswer(userID, countryID)
}

// Subscribe returns a channel receiving scoreboard updates for a lobby.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *LobbyService) Subscribe(code string) (<-chan domain.Scoreboard, func(), error) {
	lobby, err := s.lookup(code)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := lobby.subscribe()
	return ch, cancel, nil
}

// Leave removes a player and drops the lobby once empty.
func (s *LobbyService) Leave(code, userID string) {
	lobby, err := s.lookup(code)
	if err != nil {
		return
	}
	lobby.leave(userID)
	if lobby.IsEmpty() {
		s.lobbies.DeleteIfEmpty(code)
	}
}

func (s *LobbyService) lookup(code string) (*Lobby, error) {
	if !ValidLobbyCode(code) {
		return nil, domain.ErrInvalidInput
	}
	lobby, ok := s.lobbies.Get(code)
	if !ok {
		return nil, domain.ErrLobbyNotFound
	}
	return lobby, nil
}

// LobbyCodeLength is the fixed length of join codes.
const LobbyCodeLength = 6

// ValidLobbyCode reports whether a code is six uppercase letters or digits.
func ValidLobbyCode(code string) bool {
	if len(code) != LobbyCodeLength {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
