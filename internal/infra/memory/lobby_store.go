package memory

import (
	"math/rand"
	"sync"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/domain"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// LobbyStore is the in-process implementation of app.LobbyRepository. It owns
// join-code generation; a networked lobby backend can replace it without
// changing the service.
type LobbyStore struct {
	mu      sync.RWMutex
	rnd     *rand.Rand
	lobbies map[string]*app.Lobby
}

func NewLobbyStore() *LobbyStore {
	return &LobbyStore{
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		lobbies: make(map[string]*app.Lobby),
	}
}

func (s *LobbyStore) Create(difficulty domain.Difficulty, questions []domain.QuizQuestion) *app.Lobby {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := s.newCodeLocked()
	lobby := app.NewLobby(code, difficulty, questions)
	s.lobbies[code] = lobby
	return lobby
}

func (s *LobbyStore) Get(code string) (*app.Lobby, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, ok := s.lobbies[code]
	return lobby, ok
}

func (s *LobbyStore) DeleteIfEmpty(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.lobbies[code]
	if !ok {
		return
	}
	if lobby.IsEmpty() {
		delete(s.lobbies, code)
	}
}

func (s *LobbyStore) newCodeLocked() string {
	for {
		buf := make([]byte, app.LobbyCodeLength)
		for i := range buf {
			buf[i] = codeAlphabet[s.rnd.Intn(len(codeAlphabet))]
		}
		code := string(buf)
		if _, taken := s.lobbies[code]; !taken {
			return code
		}
	}
}
