package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState 是一个会话：一局棋加上它的锁。
// xiangqi.Game 本身不加锁，同一会话的请求在这里串行化。
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu   sync.Mutex
	game *xiangqi.Game
}

// Do 在持锁状态下操作对局，并刷新 UpdatedAt
func (s *GameState) Do(fn func(g *xiangqi.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
	s.UpdatedAt = time.Now()
}

// View 在持锁状态下只读对局
func (s *GameState) View(fn func(g *xiangqi.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}
