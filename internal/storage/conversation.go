package storage

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

// ConversationStorage provides in-memory storage for conversations by ID.
type ConversationStorage struct {
	mu            sync.RWMutex
	conversations map[string]entities.Conversation
	ttl           time.Duration
	now           func() time.Time
}

// NewConversationStorage creates a new ConversationStorage.
// Conversations idle for longer than ttl are treated as missing; a zero ttl keeps them forever.
func NewConversationStorage(ttl time.Duration) *ConversationStorage {
	return &ConversationStorage{
		conversations: make(map[string]entities.Conversation),
		ttl:           ttl,
		now:           time.Now,
	}
}

// Get retrieves the conversation for a given ID.
func (s *ConversationStorage) Get(_ context.Context, id string) (*entities.Conversation, error) {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()

	if !ok || s.expired(conv) {
		return nil, repository.ErrConversationNotFound
	}

	conv.Session = conv.Session.Clone()
	return &conv, nil
}

// Save stores a copy of the conversation and stamps its UpdatedAt.
func (s *ConversationStorage) Save(_ context.Context, conv *entities.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv.UpdatedAt = s.now()
	stored := *conv
	stored.Session = conv.Session.Clone()
	s.conversations[conv.ID] = stored

	s.evictLocked()
	return nil
}

// Delete removes the conversation for a given ID.
func (s *ConversationStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, id)
	return nil
}

func (s *ConversationStorage) expired(conv entities.Conversation) bool {
	return s.ttl > 0 && s.now().Sub(conv.UpdatedAt) > s.ttl
}

// PurgeExpired drops expired conversations and reports how many were removed.
func (s *ConversationStorage) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(), nil
}

// evictLocked drops expired conversations. Callers hold the write lock.
func (s *ConversationStorage) evictLocked() int64 {
	var n int64
	for id, conv := range s.conversations {
		if s.expired(conv) {
			delete(s.conversations, id)
			n++
		}
	}
	return n
}

// PlayerStorage remembers when players were last seen.
type PlayerStorage struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	now      func() time.Time
}

// NewPlayerStorage creates a new PlayerStorage.
func NewPlayerStorage() *PlayerStorage {
	return &PlayerStorage{
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Touch records the player as seen now and returns the previous visit.
func (s *PlayerStorage) Touch(_ context.Context, id string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.lastSeen[id]
	s.lastSeen[id] = s.now()
	return prev, nil
}
