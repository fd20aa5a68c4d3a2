package claims

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeTest runs the Store contract tests against any implementation.
func storeTest(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	event := func(resource string, action Action) Event {
		return Event{
			ID:        uuid.NewString(),
			Resource:  resource,
			Owner:     "arm_controller",
			Action:    action,
			Timestamp: time.Now().UTC(),
		}
	}

	t.Run("empty resource has no events", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		events, err := s.Events("shoulder")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("append and read back in order", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		claim := event("shoulder", ActionClaim)
		release := event("shoulder", ActionRelease)
		require.NoError(t, s.Append(claim))
		require.NoError(t, s.Append(release))

		events, err := s.Events("shoulder")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, claim.ID, events[0].ID)
		assert.Equal(t, ActionClaim, events[0].Action)
		assert.Equal(t, release.ID, events[1].ID)
		assert.Equal(t, ActionRelease, events[1].Action)
		assert.Equal(t, "arm_controller", events[0].Owner)
	})

	t.Run("resources are isolated", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Append(event("shoulder", ActionClaim)))
		require.NoError(t, s.Append(event("elbow", ActionClaim)))

		events, err := s.Events("shoulder")
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "shoulder", events[0].Resource)
	})

	t.Run("closed store rejects operations", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())

		err := s.Append(event("shoulder", ActionClaim))
		assert.ErrorIs(t, err, ErrStoreClosed)

		_, err = s.Events("shoulder")
		assert.ErrorIs(t, err, ErrStoreClosed)
	})
}

func TestMemoryStore(t *testing.T) {
	storeTest(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestMemoryStoreCopiesEvents(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Append(Event{ID: "1", Resource: "shoulder", Action: ActionClaim}))

	events, err := s.Events("shoulder")
	require.NoError(t, err)
	events[0].ID = "mutated"

	again, err := s.Events("shoulder")
	require.NoError(t, err)
	assert.Equal(t, "1", again[0].ID)
}

func TestSQLiteStore(t *testing.T) {
	storeTest(t, func(t *testing.T) Store {
		s, err := NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return s
	})
}

func TestSQLiteStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(Event{
		ID:        uuid.NewString(),
		Resource:  "shoulder",
		Owner:     "arm_controller",
		Action:    ActionClaim,
		Timestamp: time.Now().UTC(),
	}))
	require.NoError(t, s.Close())

	// Events survive reopening the file.
	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.Events("shoulder")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ActionClaim, events[0].Action)
}

func TestSQLiteStoreCloseTwice(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
