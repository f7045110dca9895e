package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

// memStorage is an in-memory storage.Store for tests. saveErr, when set,
// makes every Save fail.
type memStorage struct {
	data    map[string][]byte
	saveErr error
	saves   int
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (m *memStorage) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) Save(_ context.Context, key string, data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = data
	return nil
}

type counterState struct {
	Count int `json:"count"`
}

func TestStore_MissingKeyUsesDefault(t *testing.T) {
	s := New(context.Background(), newMemStorage(), "test:counter", counterState{Count: 7}, zap.NewNop())
	assert.Equal(t, 7, s.Get().Count)
}

func TestStore_LoadsPersistedValue(t *testing.T) {
	backend := newMemStorage()
	backend.data["test:counter"] = []byte(`{"count":42}`)

	s := New(context.Background(), backend, "test:counter", counterState{}, zap.NewNop())
	assert.Equal(t, 42, s.Get().Count)
}

func TestStore_MalformedDocumentFallsBackToDefault(t *testing.T) {
	backend := newMemStorage()
	backend.data["test:counter"] = []byte(`{broken`)

	s := New(context.Background(), backend, "test:counter", counterState{Count: 7}, zap.NewNop())
	assert.Equal(t, 7, s.Get().Count)
}

func TestStore_UpdatePersists(t *testing.T) {
	backend := newMemStorage()
	s := New(context.Background(), backend, "test:counter", counterState{}, zap.NewNop())

	s.Update(context.Background(), func(v counterState) counterState {
		v.Count++
		return v
	})

	assert.Equal(t, 1, s.Get().Count)
	require.Contains(t, backend.data, "test:counter")
	assert.JSONEq(t, `{"count":1}`, string(backend.data["test:counter"]))
}

func TestStore_SaveFailureKeepsInMemoryValue(t *testing.T) {
	backend := newMemStorage()
	backend.saveErr = errors.New("disk full")
	s := New(context.Background(), backend, "test:counter", counterState{}, zap.NewNop())

	s.Update(context.Background(), func(v counterState) counterState {
		v.Count = 5
		return v
	})

	assert.Equal(t, 5, s.Get().Count)
	assert.Equal(t, 1, backend.saves)
	assert.NotContains(t, backend.data, "test:counter")
}

func TestStore_SubscribeNotifiesBeforeUpdateReturns(t *testing.T) {
	s := New(context.Background(), newMemStorage(), "test:counter", counterState{}, zap.NewNop())

	var seen []int
	s.Subscribe(func(v counterState) { seen = append(seen, v.Count) })

	s.Update(context.Background(), func(v counterState) counterState {
		v.Count = 1
		return v
	})
	s.Update(context.Background(), func(v counterState) counterState {
		v.Count = 2
		return v
	})

	assert.Equal(t, []int{1, 2}, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := New(context.Background(), newMemStorage(), "test:counter", counterState{}, zap.NewNop())

	calls := 0
	unsubscribe := s.Subscribe(func(counterState) { calls++ })

	s.Update(context.Background(), func(v counterState) counterState { return v })
	unsubscribe()
	s.Update(context.Background(), func(v counterState) counterState { return v })

	assert.Equal(t, 1, calls)
}

func TestStore_MultipleSubscribers(t *testing.T) {
	s := New(context.Background(), newMemStorage(), "test:counter", counterState{}, zap.NewNop())

	first, second := 0, 0
	s.Subscribe(func(counterState) { first++ })
	s.Subscribe(func(counterState) { second++ })

	s.Update(context.Background(), func(v counterState) counterState { return v })

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
