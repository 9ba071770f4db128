package store

import (
	"testing"
	"time"

	"ludo-server/internal/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore()
	r := &room.Room{Code: "abc123", CreatedAt: time.Now()}

	s.SaveRoom(r)
	got, ok := s.GetRoom("abc123")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, s.Len())

	s.DeleteRoom("abc123")
	_, ok = s.GetRoom("abc123")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_RoomsOldestFirst(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.SaveRoom(&room.Room{Code: "c", CreatedAt: now.Add(2 * time.Second)})
	s.SaveRoom(&room.Room{Code: "a", CreatedAt: now})
	s.SaveRoom(&room.Room{Code: "b", CreatedAt: now.Add(time.Second)})

	rooms := s.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "a", rooms[0].Code)
	assert.Equal(t, "b", rooms[1].Code)
	assert.Equal(t, "c", rooms[2].Code)
}
