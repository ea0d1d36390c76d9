package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interview-prep/backend/internal/models"
)

func TestMemoryPutGetDelete(t *testing.T) {
	mem := NewMemory()

	_, ok := mem.Get("missing")
	assert.False(t, ok)

	session := &models.Session{ID: "s1", Difficulty: models.DifficultyMedium}
	mem.Put(session)

	got, ok := mem.Get("s1")
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, 1, mem.Len())

	// Put replaces.
	replacement := &models.Session{ID: "s1", Difficulty: models.DifficultyHard}
	mem.Put(replacement)
	got, _ = mem.Get("s1")
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, mem.Len())

	mem.Delete("s1")
	_, ok = mem.Get("s1")
	assert.False(t, ok)

	// Deleting a missing session is a no-op.
	mem.Delete("s1")
	assert.Equal(t, 0, mem.Len())
}

func TestMemoryConcurrentSessions(t *testing.T) {
	mem := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			mem.Put(&models.Session{ID: id})
			_, ok := mem.Get(id)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, mem.Len())
}
