package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	// Logger 非空时传给每一局，记录走子过程
	Logger *log.Logger
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := xiangqi.NewGame()
	if m.Logger != nil {
		g.Logger = log.New(m.Logger.Writer(), fmt.Sprintf("%s[%s] ", m.Logger.Prefix(), id[:8]), m.Logger.Flags())
	}
	now := time.Now()
	s := &GameState{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}
	m.games[id] = s
	return s
}

func (m *Manager) Get(id string) (*GameState, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// Prune 删除超过 maxIdle 没有更新的对局，返回删除数量
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.games {
		s.mu.Lock()
		idle := s.UpdatedAt.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.games, id)
			n++
		}
	}
	return n
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
