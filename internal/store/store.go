// Package store holds the reactive client-state stores: a generic persistent
// store plus its two specializations for favorites and ad campaigns. Each
// store mirrors one JSON document to durable storage under a fixed key;
// persistence is best-effort and the in-memory value stays authoritative for
// the session.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

// Store keeps a value of type T in memory, saves it whole on every mutation
// and notifies subscribers synchronously before the mutating call returns.
type Store[T any] struct {
	mu      sync.Mutex
	key     string
	value   T
	backend storage.Store
	logger  *zap.Logger
	subs    map[int]func(T)
	nextSub int
}

// New loads the document under key from the backend. A missing key or a
// document that fails to unmarshal silently falls back to def.
func New[T any](ctx context.Context, backend storage.Store, key string, def T, logger *zap.Logger) *Store[T] {
	s := &Store[T]{
		key:     key,
		value:   def,
		backend: backend,
		logger:  logger,
		subs:    make(map[int]func(T)),
	}

	data, err := backend.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load persisted state, using default",
				zap.String("key", key), zap.Error(err))
		}
		return s
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Discarding malformed persisted state, using default",
			zap.String("key", key), zap.Error(err))
		return s
	}
	s.value = v
	return s
}

func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Update applies fn to the current value, persists the result and notifies
// every subscriber before returning. Persistence failures are absorbed: they
// are logged and the in-memory value stands.
func (s *Store[T]) Update(ctx context.Context, fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	next := s.value

	if data, err := json.Marshal(next); err != nil {
		s.logger.Warn("Failed to marshal state for persistence",
			zap.String("key", s.key), zap.Error(err))
	} else if err := s.backend.Save(ctx, s.key, data); err != nil {
		s.logger.Warn("Failed to persist state, in-memory value stands",
			zap.String("key", s.key), zap.Error(err))
	}

	listeners := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, notify := range listeners {
		notify(next)
	}
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners run synchronously on the mutating goroutine.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
