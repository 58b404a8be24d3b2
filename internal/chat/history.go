package chat

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConversationStore keeps the rolling message history per conversation.
type ConversationStore interface {
	History(ctx context.Context, conversationID string) ([]Message, error)
	AppendTurn(ctx context.Context, conversationID string, userMsg, assistantMsg Message) error
	Clear(ctx context.Context, conversationID string) error
}

const (
	conversationKeyPrefix = "chat:conversation:"
	conversationTTL       = 24 * time.Hour
)

// appendTurnScript pushes both halves of a turn and trims the list to
// the cap in one atomic round trip.
var appendTurnScript = redis.NewScript(`
redis.call("RPUSH", KEYS[1], ARGV[1], ARGV[2])
redis.call("LTRIM", KEYS[1], -tonumber(ARGV[3]), -1)
redis.call("EXPIRE", KEYS[1], ARGV[4])
return redis.call("LLEN", KEYS[1])
`)

type redisConversationStore struct {
	client     *redis.Client
	historyCap int
}

func NewRedisConversationStore(client *redis.Client, historyCap int) ConversationStore {
	return &redisConversationStore{
		client:     client,
		historyCap: historyCap,
	}
}

func (s *redisConversationStore) key(conversationID string) string {
	return conversationKeyPrefix + conversationID
}

func (s *redisConversationStore) History(ctx context.Context, conversationID string) ([]Message, error) {
	raw, err := s.client.LRange(ctx, s.key(conversationID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			// Skip rows that do not decode rather than failing the
			// whole conversation.
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (s *redisConversationStore) AppendTurn(ctx context.Context, conversationID string, userMsg, assistantMsg Message) error {
	userJSON, err := json.Marshal(userMsg)
	if err != nil {
		return err
	}
	assistantJSON, err := json.Marshal(assistantMsg)
	if err != nil {
		return err
	}

	return appendTurnScript.Run(ctx, s.client,
		[]string{s.key(conversationID)},
		string(userJSON),
		string(assistantJSON),
		s.historyCap,
		int(conversationTTL.Seconds()),
	).Err()
}

func (s *redisConversationStore) Clear(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, s.key(conversationID)).Err()
}

// memoryConversationStore is the in-process variant used by tests.
type memoryConversationStore struct {
	mu         sync.Mutex
	historyCap int
	data       map[string][]Message
}

func NewMemoryConversationStore(historyCap int) ConversationStore {
	return &memoryConversationStore{
		historyCap: historyCap,
		data:       make(map[string][]Message),
	}
}

func (s *memoryConversationStore) History(_ context.Context, conversationID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.data[conversationID]
	out := make([]Message, len(history))
	copy(out, history)
	return out, nil
}

func (s *memoryConversationStore) AppendTurn(_ context.Context, conversationID string, userMsg, assistantMsg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.data[conversationID], userMsg, assistantMsg)
	if len(history) > s.historyCap {
		history = history[len(history)-s.historyCap:]
	}
	s.data[conversationID] = history
	return nil
}

func (s *memoryConversationStore) Clear(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, conversationID)
	return nil
}
