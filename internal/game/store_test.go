package game

import (
	"strings"
	"sync"
	"testing"

	"github.com/ddavidhe/jeppy/internal/board"
)

func TestStore_Create(t *testing.T) {
	store := NewStore()

	t.Run("code shape", func(t *testing.T) {
		room, created := store.Create("Alice", board.DefaultTemplate())
		if len(room.Code()) != codeLength {
			t.Errorf("Expected %d-character code, got %q", codeLength, room.Code())
		}
		for _, ch := range room.Code() {
			if !strings.ContainsRune(codeAlphabet, ch) {
				t.Errorf("Code %q contains %q outside the allowed alphabet", room.Code(), ch)
			}
		}
		if created.Code != room.Code() {
			t.Errorf("Event code %q does not match room code %q", created.Code, room.Code())
		}
	})

	t.Run("creator is host with score zero", func(t *testing.T) {
		room, created := store.Create("Alice", board.DefaultTemplate())
		if !created.IsHost {
			t.Error("Creator must be host")
		}
		if created.PlayerID != room.HostID() {
			t.Error("Event player ID must be the room's host ID")
		}
		if len(created.Players) != 1 || created.Players[0].Score != 0 {
			t.Errorf("Expected roster [creator:0], got %+v", created.Players)
		}
		if room.Phase() != PhaseLobby {
			t.Errorf("New room must be in lobby, got %s", room.Phase())
		}
	})

	t.Run("codes unique among live rooms", func(t *testing.T) {
		s := NewStore()
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			room, _ := s.Create("Host", board.DefaultTemplate())
			if seen[room.Code()] {
				t.Fatalf("Duplicate live code %q", room.Code())
			}
			seen[room.Code()] = true
		}
	})

	t.Run("player IDs are distinct and opaque", func(t *testing.T) {
		s := NewStore()
		_, a := s.Create("A", board.DefaultTemplate())
		_, b := s.Create("B", board.DefaultTemplate())
		if a.PlayerID == b.PlayerID {
			t.Error("Player IDs must be unique")
		}
		if len(a.PlayerID) != 32 {
			t.Errorf("Expected 32 hex chars, got %d", len(a.PlayerID))
		}
	})
}

func TestStore_GetDelete(t *testing.T) {
	store := NewStore()
	room, _ := store.Create("Alice", board.DefaultTemplate())

	if got, ok := store.Get(room.Code()); !ok || got != room {
		t.Fatal("Expected Get to return the created room")
	}

	store.Delete(room.Code())
	if _, ok := store.Get(room.Code()); ok {
		t.Error("Expected room to be gone after Delete")
	}
	if store.Count() != 0 {
		t.Errorf("Expected empty store, got %d rooms", store.Count())
	}

	// The freed code is immediately available to a new room.
	if _, ok := store.Get(room.Code()); ok {
		t.Error("Deleted code must not resolve")
	}
}

func TestStore_ConcurrentLifecycle(t *testing.T) {
	store := NewStore()
	tmpl := board.DefaultTemplate()

	var wg sync.WaitGroup
	codes := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			room, _ := store.Create("Host", tmpl)
			codes <- room.Code()
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		if seen[code] {
			t.Fatalf("Duplicate code %q from concurrent creates", code)
		}
		seen[code] = true
	}
	if store.Count() != 100 {
		t.Fatalf("Expected 100 rooms, got %d", store.Count())
	}

	for code := range seen {
		code := code
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Delete(code)
		}()
	}
	wg.Wait()
	if store.Count() != 0 {
		t.Fatalf("Expected empty store after concurrent deletes, got %d", store.Count())
	}
}
