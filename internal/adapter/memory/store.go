package memory

import (
	"sync"

	"persona-chat/internal/domain"
)

// Store keeps per-chat conversation history for the Telegram front-end.
// History is capped per chat and dropped wholesale on persona switch.
type Store struct {
	mu            sync.Mutex
	conversations map[int64][]domain.ChatMessage
}

func NewStore() *Store {
	return &Store{
		conversations: make(map[int64][]domain.ChatMessage),
	}
}

func (s *Store) Add(chatID int64, msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[chatID] = append(s.conversations[chatID], msg)
}

// Recent returns up to limit trailing messages for the chat.
func (s *Store) Recent(chatID int64, limit int) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.conversations[chatID]
	if len(history) == 0 {
		return nil
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	return append([]domain.ChatMessage(nil), history...)
}

func (s *Store) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, chatID)
}
