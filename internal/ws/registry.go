package ws

import "sync"

// binding ties a connection to the player and room it acts for.
type binding struct {
	playerID string
	roomCode string
}

// Registry owns the connection-to-identity association. Connections start
// unbound; they gain a (player, room) binding when a create or join succeeds
// and lose it when the connection closes or the room dies. Room state is
// never stored here.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]binding         // conn ID -> identity
	rooms    map[string]map[string]Conn // room code -> player ID -> conn
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]binding),
		rooms:    make(map[string]map[string]Conn),
	}
}

// Bind associates a connection with a player in a room. At most one
// connection per player: a later bind for the same player replaces the
// earlier connection's membership.
func (r *Registry) Bind(c Conn, playerID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[c.ID()] = binding{playerID: playerID, roomCode: roomCode}
	if r.rooms[roomCode] == nil {
		r.rooms[roomCode] = make(map[string]Conn)
	}
	r.rooms[roomCode][playerID] = c
}

// Lookup resolves a connection to its (player, room) binding.
func (r *Registry) Lookup(connID string) (playerID, roomCode string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[connID]
	return b.playerID, b.roomCode, ok
}

// Unbind removes a connection's binding and room membership, returning what
// it was bound to. Unbound connections return ok=false.
func (r *Registry) Unbind(connID string) (playerID, roomCode string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bindings[connID]
	if !ok {
		return "", "", false
	}
	delete(r.bindings, connID)

	if members, exists := r.rooms[b.roomCode]; exists {
		if c, bound := members[b.playerID]; bound && c.ID() == connID {
			delete(members, b.playerID)
			if len(members) == 0 {
				delete(r.rooms, b.roomCode)
			}
		}
	}
	return b.playerID, b.roomCode, true
}

// RoomConns returns the live connections of a room, excluding exceptPlayerID
// if non-empty.
func (r *Registry) RoomConns(roomCode, exceptPlayerID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomCode]
	out := make([]Conn, 0, len(members))
	for playerID, c := range members {
		if exceptPlayerID != "" && playerID == exceptPlayerID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DropRoom removes a room's membership index and the bindings of everyone
// still in it. Used when a room is torn down.
func (r *Registry) DropRoom(roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.rooms[roomCode] {
		delete(r.bindings, c.ID())
	}
	delete(r.rooms, roomCode)
}
