package game

import (
	"errors"
	"sync"

	"github.com/ddavidhe/jeppy/internal/board"
	"github.com/ddavidhe/jeppy/internal/protocol"
)

// User-input validation failures. These are sent back to the offending
// connection as error records; everything else invalid is silently dropped.
var (
	ErrRoomNotFound   = errors.New("Room not found. Check the code and try again.")
	ErrGameInProgress = errors.New("Game already in progress.")
)

// Store is the process-wide mapping from room code to live room. Its mutex
// guards only the map itself; each room serializes its own transitions.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewStore creates an empty room store.
func NewStore() *Store {
	return &Store{rooms: make(map[string]*Room)}
}

// Create makes a new room with the given player as host and returns it with
// the creation confirmation. Codes are regenerated until unused; a code freed
// by Delete may be handed out again.
func (s *Store) Create(hostName string, template []board.CategoryTemplate) (*Room, protocol.RoomCreated) {
	host := &Player{ID: newPlayerID(), Name: hostName}

	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = generateRoomCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}

	room := newRoom(code, template, host)
	s.rooms[code] = room

	return room, protocol.NewRoomCreated(code, host.ID, room.Roster())
}

// Get looks up a live room by code.
func (s *Store) Get(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	return room, ok
}

// Delete removes a room, freeing its code for reuse.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Count returns the number of live rooms.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
