// Package game implements the authoritative room model: the per-room state
// machine, buzz arbitration, and the process-wide room store. All room
// mutations happen under the room's own mutex, so two messages touching the
// same room are never evaluated concurrently.
package game

import (
	"sync"

	"github.com/ddavidhe/jeppy/internal/board"
	"github.com/ddavidhe/jeppy/internal/protocol"
)

// Phase is the room's coarse state.
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhasePlaying  Phase = "playing"
	PhaseQuestion Phase = "question"
)

// Player is a roster entry. Scores are signed and unbounded.
type Player struct {
	ID    string
	Name  string
	Score int
}

// position points at a board tile.
type position struct {
	categoryIdx int
	questionIdx int
}

// Room is one game session. State transitions either return the event to
// broadcast with ok=true, or ok=false for a silent rejection: wrong actor,
// wrong phase, or a stale/redundant request. Rejections are not errors; the
// room is left untouched and no reply is owed to the sender.
type Room struct {
	code     string
	hostID   string
	template []board.CategoryTemplate

	mu       sync.Mutex
	phase    Phase
	players  []*Player
	board    *board.Board
	current  *position
	answerer string
	buzzed   map[string]struct{}
}

func newRoom(code string, template []board.CategoryTemplate, host *Player) *Room {
	return &Room{
		code:     code,
		hostID:   host.ID,
		template: template,
		phase:    PhaseLobby,
		players:  []*Player{host},
		buzzed:   make(map[string]struct{}),
	}
}

// Code returns the room's join code.
func (r *Room) Code() string { return r.code }

// HostID returns the identity of the room's fixed host.
func (r *Room) HostID() string { return r.hostID }

// Phase returns the room's current phase.
func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Roster returns the current roster snapshot in join order.
func (r *Room) Roster() []protocol.PlayerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster()
}

// roster builds the wire roster. Callers must hold r.mu.
func (r *Room) roster() []protocol.PlayerInfo {
	out := make([]protocol.PlayerInfo, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, protocol.PlayerInfo{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return out
}

// findPlayer returns the roster entry for id. Callers must hold r.mu.
func (r *Room) findPlayer(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Join adds a new player while the room is still in the lobby. It returns
// the confirmation for the joining player and the roster update for everyone
// else.
func (r *Room) Join(name string) (protocol.RoomJoined, protocol.PlayerJoined, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseLobby {
		return protocol.RoomJoined{}, protocol.PlayerJoined{}, ErrGameInProgress
	}

	p := &Player{ID: newPlayerID(), Name: name}
	r.players = append(r.players, p)

	roster := r.roster()
	return protocol.NewRoomJoined(r.code, p.ID, roster), protocol.NewPlayerJoined(roster), nil
}

// Start moves the room from lobby to playing and builds the board from the
// dataset template. Host-only.
func (r *Room) Start(actorID string) (protocol.GameStarted, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.hostID || r.phase != PhaseLobby {
		return protocol.GameStarted{}, false
	}

	r.board = board.New(r.template)
	r.phase = PhasePlaying

	return protocol.NewGameStarted(r.board.Redacted(), r.roster()), true
}

// Select opens an unanswered board tile and resets the buzz state for it.
// Host-only, playing phase only.
func (r *Room) Select(actorID string, categoryIdx, questionIdx int) (protocol.QuestionSelected, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.hostID || r.phase != PhasePlaying {
		return protocol.QuestionSelected{}, false
	}
	q, found := r.board.Question(categoryIdx, questionIdx)
	if !found || q.Answered {
		return protocol.QuestionSelected{}, false
	}

	r.phase = PhaseQuestion
	r.current = &position{categoryIdx: categoryIdx, questionIdx: questionIdx}
	r.answerer = ""
	r.buzzed = make(map[string]struct{})

	return protocol.NewQuestionSelected(categoryIdx, questionIdx, q.Clue, q.Value), true
}

// Buzz locks the acting player in as the answerer. First valid buzz wins;
// arbitration order is server processing order under r.mu. A buzz is valid
// only while a question is open with no answerer locked, from a non-host
// player who has not already buzzed for this question.
func (r *Room) Buzz(actorID string) (protocol.BuzzedIn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseQuestion || r.answerer != "" || actorID == r.hostID {
		return protocol.BuzzedIn{}, false
	}
	if _, already := r.buzzed[actorID]; already {
		return protocol.BuzzedIn{}, false
	}
	p := r.findPlayer(actorID)
	if p == nil {
		return protocol.BuzzedIn{}, false
	}

	r.answerer = actorID
	r.buzzed[actorID] = struct{}{}

	return protocol.NewBuzzedIn(p.ID, p.Name), true
}

// MarkCorrect awards the open question's value to the locked answerer, marks
// the tile answered, and returns the room to the playing phase. Host-only,
// requires a locked answerer.
func (r *Room) MarkCorrect(actorID string) (protocol.QuestionResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.hostID || r.answerer == "" {
		return protocol.QuestionResult{}, false
	}
	pos, q := r.openQuestion()
	if q == nil {
		return protocol.QuestionResult{}, false
	}

	if p := r.findPlayer(r.answerer); p != nil {
		p.Score += q.Value
	}
	q.Answered = true
	r.phase = PhasePlaying
	r.current = nil
	r.answerer = ""

	return protocol.NewQuestionResult(pos.categoryIdx, pos.questionIdx, r.roster()), true
}

// MarkIncorrect deducts the open question's value from the locked answerer
// and unlocks the buzz for the remaining eligible players. The penalized
// player stays in the buzzed-set, so they get no second attempt at this
// question. Host-only, requires a locked answerer.
func (r *Room) MarkIncorrect(actorID string) (protocol.QuestionIncorrect, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.hostID || r.answerer == "" {
		return protocol.QuestionIncorrect{}, false
	}
	pos, q := r.openQuestion()
	if q == nil {
		return protocol.QuestionIncorrect{}, false
	}

	if p := r.findPlayer(r.answerer); p != nil {
		p.Score -= q.Value
	}
	r.answerer = ""

	return protocol.NewQuestionIncorrect(pos.categoryIdx, pos.questionIdx, r.roster()), true
}

// Dismiss closes the open question without scoring anyone. Host-only,
// requires an open question; an answerer may or may not be locked.
func (r *Room) Dismiss(actorID string) (protocol.QuestionDismissed, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID != r.hostID || r.current == nil {
		return protocol.QuestionDismissed{}, false
	}
	pos, q := r.openQuestion()
	if q == nil {
		return protocol.QuestionDismissed{}, false
	}

	q.Answered = true
	r.phase = PhasePlaying
	r.current = nil
	r.answerer = ""

	return protocol.NewQuestionDismissed(pos.categoryIdx, pos.questionIdx), true
}

// openQuestion resolves the current-question pointer. A nil result means no
// question is open or the pointer no longer resolves to a tile; callers treat
// that as a rejection rather than a fault. Callers must hold r.mu.
func (r *Room) openQuestion() (position, *board.Question) {
	if r.current == nil || r.board == nil {
		return position{}, nil
	}
	q, found := r.board.Question(r.current.categoryIdx, r.current.questionIdx)
	if !found {
		return position{}, nil
	}
	return *r.current, q
}

// Leave removes a player from the roster after their connection closed.
// hostLeft reports that the departing player was the host, in which case the
// roster is left as-is and the caller tears the whole room down. ok is false
// when the player was not in the roster (already removed).
func (r *Room) Leave(playerID string) (evt protocol.PlayerLeft, hostLeft, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID == r.hostID {
		return protocol.PlayerLeft{}, true, true
	}

	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return protocol.PlayerLeft{}, false, false
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)

	return protocol.NewPlayerLeft(r.roster()), false, true
}
