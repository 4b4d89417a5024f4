// Package cache holds the ephemeral re-optimization suggestion sessions.
// A session is a fixed batch of alternatives for one trip and one user; it
// lives in Redis under a TTL and is never written to Postgres, so no
// suggestion outlives the flow that produced it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jairomatosve/voyagedesigner/internal/ai"
)

// SessionTTL bounds how long a suggestion batch stays claimable.
const SessionTTL = 30 * time.Minute

var ErrNoSession = errors.New("no active suggestion session")
var ErrUnknownSuggestion = errors.New("suggestion not in the current session")

// SuggestionStore keeps one active session per (trip, user). A nil Redis
// client switches it to an in-process map with the same TTL semantics, so
// the API keeps working without a cache server.
type SuggestionStore struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]localEntry
}

type localEntry struct {
	batch     []ai.Suggestion
	expiresAt time.Time
}

func NewSuggestionStore(rdb *redis.Client) *SuggestionStore {
	return &SuggestionStore{rdb: rdb, local: make(map[string]localEntry)}
}

func sessionKey(tripID, userID uint) string {
	return fmt.Sprintf("reopt:%d:%d", tripID, userID)
}

// Put replaces the session with a fresh batch, assigning sequential IDs.
func (s *SuggestionStore) Put(ctx context.Context, tripID, userID uint, batch []ai.Suggestion) ([]ai.Suggestion, error) {
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = fmt.Sprintf("sug-%d", i+1)
		}
	}
	key := sessionKey(tripID, userID)

	if s.rdb == nil {
		s.mu.Lock()
		s.local[key] = localEntry{batch: batch, expiresAt: time.Now().Add(SessionTTL)}
		s.mu.Unlock()
		return batch, nil
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, key, data, SessionTTL).Err(); err != nil {
		return nil, err
	}
	return batch, nil
}

// Get returns the live batch or ErrNoSession.
func (s *SuggestionStore) Get(ctx context.Context, tripID, userID uint) ([]ai.Suggestion, error) {
	key := sessionKey(tripID, userID)

	if s.rdb == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.local[key]
		if !ok || time.Now().After(entry.expiresAt) {
			delete(s.local, key)
			return nil, ErrNoSession
		}
		return entry.batch, nil
	}

	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var batch []ai.Suggestion
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Decline drops one suggestion from the session, keeping the rest and the
// remaining TTL window. Declining the last one closes the session.
func (s *SuggestionStore) Decline(ctx context.Context, tripID, userID uint, suggestionID string) ([]ai.Suggestion, error) {
	batch, err := s.Get(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	kept := batch[:0]
	found := false
	for _, sug := range batch {
		if sug.ID == suggestionID {
			found = true
			continue
		}
		kept = append(kept, sug)
	}
	if !found {
		return nil, ErrUnknownSuggestion
	}
	if len(kept) == 0 {
		return nil, s.Close(ctx, tripID, userID)
	}
	if err := s.update(ctx, sessionKey(tripID, userID), kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// update rewrites the live batch without re-arming the TTL.
func (s *SuggestionStore) update(ctx context.Context, key string, batch []ai.Suggestion) error {
	if s.rdb == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.local[key]
		if !ok {
			return ErrNoSession
		}
		entry.batch = batch
		s.local[key] = entry
		return nil
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, data, redis.KeepTTL).Err()
}

// Accept returns the chosen suggestion and closes the whole session:
// acceptance ends the flow, nothing is partially applied.
func (s *SuggestionStore) Accept(ctx context.Context, tripID, userID uint, suggestionID string) (*ai.Suggestion, error) {
	batch, err := s.Get(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	for _, sug := range batch {
		if sug.ID == suggestionID {
			accepted := sug
			if err := s.Close(ctx, tripID, userID); err != nil {
				return nil, err
			}
			return &accepted, nil
		}
	}
	return nil, ErrUnknownSuggestion
}

// Close discards the session.
func (s *SuggestionStore) Close(ctx context.Context, tripID, userID uint) error {
	key := sessionKey(tripID, userID)
	if s.rdb == nil {
		s.mu.Lock()
		delete(s.local, key)
		s.mu.Unlock()
		return nil
	}
	return s.rdb.Del(ctx, key).Err()
}
