package ws

import (
	"sync"
	"testing"
)

// fakeConn records every frame the server sends it.
type fakeConn struct {
	id       string
	writable bool

	mu     sync.Mutex
	frames [][]byte
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id, writable: true}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Send(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.writable {
		return false
	}
	f.frames = append(f.frames, data)
	return true
}

func (f *fakeConn) sent() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.frames))
	copy(out, f.frames)
	return out
}

func TestRegistry_BindLookup(t *testing.T) {
	reg := NewRegistry()
	conn := newFakeConn("c1")

	if _, _, ok := reg.Lookup("c1"); ok {
		t.Fatal("Unbound connection must not resolve")
	}

	reg.Bind(conn, "p1", "AB23")
	playerID, roomCode, ok := reg.Lookup("c1")
	if !ok || playerID != "p1" || roomCode != "AB23" {
		t.Errorf("Lookup = %s/%s/%v, want p1/AB23/true", playerID, roomCode, ok)
	}
}

func TestRegistry_Unbind(t *testing.T) {
	reg := NewRegistry()
	conn := newFakeConn("c1")
	reg.Bind(conn, "p1", "AB23")

	playerID, roomCode, ok := reg.Unbind("c1")
	if !ok || playerID != "p1" || roomCode != "AB23" {
		t.Fatalf("Unbind = %s/%s/%v, want p1/AB23/true", playerID, roomCode, ok)
	}
	if _, _, ok := reg.Lookup("c1"); ok {
		t.Error("Unbound connection must not resolve")
	}
	if conns := reg.RoomConns("AB23", ""); len(conns) != 0 {
		t.Errorf("Expected empty room, got %d conns", len(conns))
	}
	if _, _, ok := reg.Unbind("c1"); ok {
		t.Error("Second unbind must report ok=false")
	}
}

func TestRegistry_RoomConns(t *testing.T) {
	reg := NewRegistry()
	a, b, c := newFakeConn("c1"), newFakeConn("c2"), newFakeConn("c3")
	reg.Bind(a, "p1", "AB23")
	reg.Bind(b, "p2", "AB23")
	reg.Bind(c, "p3", "ZZ99")

	if got := len(reg.RoomConns("AB23", "")); got != 2 {
		t.Errorf("Expected 2 conns in AB23, got %d", got)
	}

	except := reg.RoomConns("AB23", "p1")
	if len(except) != 1 || except[0].ID() != "c2" {
		t.Errorf("Expected only c2 when excluding p1, got %d conns", len(except))
	}

	if got := len(reg.RoomConns("NOPE", "")); got != 0 {
		t.Errorf("Expected no conns for unknown room, got %d", got)
	}
}

func TestRegistry_DropRoom(t *testing.T) {
	reg := NewRegistry()
	a, b := newFakeConn("c1"), newFakeConn("c2")
	reg.Bind(a, "p1", "AB23")
	reg.Bind(b, "p2", "AB23")

	reg.DropRoom("AB23")

	if len(reg.RoomConns("AB23", "")) != 0 {
		t.Error("Dropped room must have no conns")
	}
	for _, id := range []string{"c1", "c2"} {
		if _, _, ok := reg.Lookup(id); ok {
			t.Errorf("Conn %s must be unbound after DropRoom", id)
		}
	}
}

func TestRegistry_RebindReplacesConnection(t *testing.T) {
	reg := NewRegistry()
	old, fresh := newFakeConn("c1"), newFakeConn("c2")
	reg.Bind(old, "p1", "AB23")
	reg.Bind(fresh, "p1", "AB23")

	conns := reg.RoomConns("AB23", "")
	if len(conns) != 1 || conns[0].ID() != "c2" {
		t.Fatalf("Expected only the fresh conn in the room, got %d", len(conns))
	}

	// Unbinding the stale conn must not evict the fresh one.
	reg.Unbind("c1")
	conns = reg.RoomConns("AB23", "")
	if len(conns) != 1 || conns[0].ID() != "c2" {
		t.Errorf("Stale unbind evicted the fresh conn")
	}
}
