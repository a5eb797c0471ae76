package app

import (
	"sort"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
)

// Lobby is a multiplayer quiz room. Every player answers the same shared
// question set at their own pace; standings are broadcast to subscribers on
// every change.
type Lobby struct {
	code       string
	difficulty domain.Difficulty
	questions  []domain.QuizQuestion
	createdAt  time.Time
	now        func() time.Time

	mu          sync.RWMutex
	players     map[string]*lobbyPlayer
	subscribers map[chan domain.Scoreboard]struct{}
}

type lobbyPlayer struct {
	userID      string
	displayName string
	index       int
	score       int
	lastUpdated time.Time
}

// NewLobby is exported for repository implementations that seed lobbies.
func NewLobby(code string, difficulty domain.Difficulty, questions []domain.QuizQuestion) *Lobby {
	return NewLobbyWithClock(code, difficulty, questions, time.Now)
}

// NewLobbyWithClock is test-only for deterministic timestamps.
func NewLobbyWithClock(code string, difficulty domain.Difficulty, questions []domain.QuizQuestion, now func() time.Time) *Lobby {
	return &Lobby{
		code:        code,
		difficulty:  difficulty,
		questions:   questions,
		createdAt:   now(),
		now:         now,
		players:     make(map[string]*lobbyPlayer),
		subscribers: make(map[chan domain.Scoreboard]struct{}),
	}
}

func (l *Lobby) Code() string { return l.code }

// Questions returns the shared question set for transports to render.
func (l *Lobby) Questions() []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, len(l.questions))
	copy(questions, l.questions)
	return questions
}

// IsEmpty reports whether the lobby has no players.
func (l *Lobby) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.players) == 0
}

func (l *Lobby) join(userID, displayName string) domain.Scoreboard {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if player, ok := l.players[userID]; ok {
		player.displayName = displayName
		player.lastUpdated = now
	} else {
		l.players[userID] = &lobbyPlayer{
			userID:      userID,
			displayName: displayName,
			lastUpdated: now,
		}
	}
	return l.broadcastLocked()
}

// applyAnswer scores the player's current question and advances their index.
// A player who already finished gets a no-op outcome, same as the solo engine.
func (l *Lobby) applyAnswer(userID, countryID string) (domain.AnswerOutcome, domain.Scoreboard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	player, ok := l.players[userID]
	if !ok {
		return domain.AnswerOutcome{}, domain.Scoreboard{}, domain.ErrParticipantNotFound
	}
	if player.index >= len(l.questions) {
		return domain.AnswerOutcome{Finished: true, Score: player.score}, l.snapshotLocked(), nil
	}

	correct := l.questions[player.index].CorrectID == countryID
	if correct {
		player.score++
	}
	player.index++
	player.lastUpdated = l.now()

	outcome := domain.AnswerOutcome{
		Correct:  correct,
		Finished: player.index >= len(l.questions),
		Score:    player.score,
	}
	return outcome, l.broadcastLocked(), nil
}

func (l *Lobby) leave(userID string) domain.Scoreboard {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.players, userID)
	return l.broadcastLocked()
}

func (l *Lobby) subscribe() (<-chan domain.Scoreboard, func()) {
	ch := make(chan domain.Scoreboard, 8)

	l.mu.Lock()
	l.subscribers[ch] = struct{}{}
	initial := l.snapshotLocked()
	l.mu.Unlock()

	ch <- initial

	cancel := func() {
		l.mu.Lock()
		if _, ok := l.subscribers[ch]; ok {
			delete(l.subscribers, ch)
			close(ch)
		}
		l.mu.Unlock()
	}
	return ch, cancel
}

func (l *Lobby) broadcastLocked() domain.Scoreboard {
	board := l.snapshotLocked()
	for ch := range l.subscribers {
		select {
		case ch <- board:
		default:
			// Drop the stale snapshot so a slow reader never blocks the lobby.
			select {
			case <-ch:
			default:
			}
			ch <- board
		}
	}
	return board
}

func (l *Lobby) snapshotLocked() domain.Scoreboard {
	entries := make([]domain.ScoreboardEntry, 0, len(l.players))
	for _, player := range l.players {
		entries = append(entries, domain.ScoreboardEntry{
			UserID:      player.userID,
			DisplayName: player.displayName,
			Score:       player.score,
			Finished:    player.index >= len(l.questions),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		// Tie-break by who reached the score earlier, then name.
		pi := l.players[entries[i].UserID]
		pj := l.players[entries[j].UserID]
		if pi != nil && pj != nil && !pi.lastUpdated.Equal(pj.lastUpdated) {
			return pi.lastUpdated.Before(pj.lastUpdated)
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	return domain.Scoreboard{
		Code:      l.code,
		Entries:   entries,
		UpdatedAt: l.now(),
	}
}
