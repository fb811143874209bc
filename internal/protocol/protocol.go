// Package protocol defines the wire contract between clients and the server:
// a closed set of inbound commands and outbound events, each a JSON record
// with a "type" discriminator. Inbound payloads are decoded once at the
// boundary into typed variants; everything past the boundary works with the
// variants, never raw JSON.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ddavidhe/jeppy/internal/board"
)

// ErrUnknownType is returned for inbound messages whose type discriminator
// is not in the catalog. Callers drop these silently.
var ErrUnknownType = errors.New("unknown message type")

// PlayerInfo is the roster entry sent to clients. The full roster is sent on
// every change, never a delta.
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Inbound message types.
const (
	TypeCreateRoom      = "create_room"
	TypeJoinRoom        = "join_room"
	TypeStartGame       = "start_game"
	TypeSelectQuestion  = "select_question"
	TypeBuzzIn          = "buzz_in"
	TypeMarkCorrect     = "mark_correct"
	TypeMarkIncorrect   = "mark_incorrect"
	TypeDismissQuestion = "dismiss_question"
)

// Outbound message types.
const (
	TypeRoomCreated       = "room_created"
	TypeRoomJoined        = "room_joined"
	TypePlayerJoined      = "player_joined"
	TypePlayerLeft        = "player_left"
	TypeGameStarted       = "game_started"
	TypeQuestionSelected  = "question_selected"
	TypeBuzzedIn          = "buzzed_in"
	TypeQuestionResult    = "question_result"
	TypeQuestionIncorrect = "question_incorrect"
	TypeQuestionDismissed = "question_dismissed"
	TypeRoomClosed        = "room_closed"
	TypeError             = "error"
)

// Inbound is a decoded client command.
type Inbound interface{ inbound() }

// CreateRoom asks for a new room with the sender as host.
type CreateRoom struct {
	Name string
}

// JoinRoom asks to join an existing room in the lobby phase.
type JoinRoom struct {
	Name string
	Code string
}

// StartGame is the host command that moves the room from lobby to playing.
type StartGame struct{}

// SelectQuestion is the host command that opens a board tile.
type SelectQuestion struct {
	CategoryIdx int
	QuestionIdx int
}

// BuzzIn is a player's claim to answer the open question.
type BuzzIn struct{}

// MarkCorrect is the host's ruling that awards the locked answerer.
type MarkCorrect struct{}

// MarkIncorrect is the host's ruling that penalizes the locked answerer.
type MarkIncorrect struct{}

// DismissQuestion closes the open question without scoring anyone.
type DismissQuestion struct{}

func (CreateRoom) inbound()      {}
func (JoinRoom) inbound()        {}
func (StartGame) inbound()       {}
func (SelectQuestion) inbound()  {}
func (BuzzIn) inbound()          {}
func (MarkCorrect) inbound()     {}
func (MarkIncorrect) inbound()   {}
func (DismissQuestion) inbound() {}

// inboundEnvelope is the superset of fields any inbound record may carry.
type inboundEnvelope struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	CategoryIdx int    `json:"categoryIdx"`
	QuestionIdx int    `json:"questionIdx"`
}

// DecodeInbound parses a raw client frame into a typed command.
func DecodeInbound(data []byte) (Inbound, error) {
	var env inboundEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	switch env.Type {
	case TypeCreateRoom:
		return CreateRoom{Name: env.Name}, nil
	case TypeJoinRoom:
		return JoinRoom{Name: env.Name, Code: env.Code}, nil
	case TypeStartGame:
		return StartGame{}, nil
	case TypeSelectQuestion:
		return SelectQuestion{CategoryIdx: env.CategoryIdx, QuestionIdx: env.QuestionIdx}, nil
	case TypeBuzzIn:
		return BuzzIn{}, nil
	case TypeMarkCorrect:
		return MarkCorrect{}, nil
	case TypeMarkIncorrect:
		return MarkIncorrect{}, nil
	case TypeDismissQuestion:
		return DismissQuestion{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}

// Outbound is a server event ready to be serialized to clients.
type Outbound interface{ outbound() }

// RoomCreated confirms room creation to the host.
type RoomCreated struct {
	Type     string       `json:"type"`
	Code     string       `json:"code"`
	PlayerID string       `json:"playerId"`
	IsHost   bool         `json:"isHost"`
	Players  []PlayerInfo `json:"players"`
}

// RoomJoined confirms a join to the joining player.
type RoomJoined struct {
	Type     string       `json:"type"`
	Code     string       `json:"code"`
	PlayerID string       `json:"playerId"`
	IsHost   bool         `json:"isHost"`
	Players  []PlayerInfo `json:"players"`
}

// PlayerJoined carries the updated roster to everyone already in the room.
type PlayerJoined struct {
	Type    string       `json:"type"`
	Players []PlayerInfo `json:"players"`
}

// PlayerLeft carries the updated roster after a departure.
type PlayerLeft struct {
	Type    string       `json:"type"`
	Players []PlayerInfo `json:"players"`
}

// GameStarted carries the answer-redacted board and the roster.
type GameStarted struct {
	Type    string                   `json:"type"`
	Board   []board.RedactedCategory `json:"board"`
	Players []PlayerInfo             `json:"players"`
}

// QuestionSelected reveals a tile's clue and value. The answer is withheld.
type QuestionSelected struct {
	Type        string `json:"type"`
	CategoryIdx int    `json:"categoryIdx"`
	QuestionIdx int    `json:"questionIdx"`
	Clue        string `json:"clue"`
	Value       int    `json:"value"`
}

// BuzzedIn announces the locked answerer.
type BuzzedIn struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// QuestionResult closes a question after a correct ruling.
type QuestionResult struct {
	Type        string       `json:"type"`
	Correct     bool         `json:"correct"`
	CategoryIdx int          `json:"categoryIdx"`
	QuestionIdx int          `json:"questionIdx"`
	Players     []PlayerInfo `json:"players"`
}

// QuestionIncorrect reports a penalty; the question stays open.
type QuestionIncorrect struct {
	Type        string       `json:"type"`
	CategoryIdx int          `json:"categoryIdx"`
	QuestionIdx int          `json:"questionIdx"`
	Players     []PlayerInfo `json:"players"`
}

// QuestionDismissed closes a question with no scoring.
type QuestionDismissed struct {
	Type        string `json:"type"`
	CategoryIdx int    `json:"categoryIdx"`
	QuestionIdx int    `json:"questionIdx"`
}

// RoomClosed tells remaining players the room is gone.
type RoomClosed struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorMessage surfaces a user-input validation failure.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (RoomCreated) outbound()       {}
func (RoomJoined) outbound()        {}
func (PlayerJoined) outbound()      {}
func (PlayerLeft) outbound()        {}
func (GameStarted) outbound()       {}
func (QuestionSelected) outbound()  {}
func (BuzzedIn) outbound()          {}
func (QuestionResult) outbound()    {}
func (QuestionIncorrect) outbound() {}
func (QuestionDismissed) outbound() {}
func (RoomClosed) outbound()        {}
func (ErrorMessage) outbound()      {}

// Constructors fill in the type discriminator so call sites cannot forget it.

func NewRoomCreated(code, playerID string, players []PlayerInfo) RoomCreated {
	return RoomCreated{Type: TypeRoomCreated, Code: code, PlayerID: playerID, IsHost: true, Players: players}
}

func NewRoomJoined(code, playerID string, players []PlayerInfo) RoomJoined {
	return RoomJoined{Type: TypeRoomJoined, Code: code, PlayerID: playerID, IsHost: false, Players: players}
}

func NewPlayerJoined(players []PlayerInfo) PlayerJoined {
	return PlayerJoined{Type: TypePlayerJoined, Players: players}
}

func NewPlayerLeft(players []PlayerInfo) PlayerLeft {
	return PlayerLeft{Type: TypePlayerLeft, Players: players}
}

func NewGameStarted(b []board.RedactedCategory, players []PlayerInfo) GameStarted {
	return GameStarted{Type: TypeGameStarted, Board: b, Players: players}
}

func NewQuestionSelected(categoryIdx, questionIdx int, clue string, value int) QuestionSelected {
	return QuestionSelected{Type: TypeQuestionSelected, CategoryIdx: categoryIdx, QuestionIdx: questionIdx, Clue: clue, Value: value}
}

func NewBuzzedIn(playerID, playerName string) BuzzedIn {
	return BuzzedIn{Type: TypeBuzzedIn, PlayerID: playerID, PlayerName: playerName}
}

func NewQuestionResult(categoryIdx, questionIdx int, players []PlayerInfo) QuestionResult {
	return QuestionResult{Type: TypeQuestionResult, Correct: true, CategoryIdx: categoryIdx, QuestionIdx: questionIdx, Players: players}
}

func NewQuestionIncorrect(categoryIdx, questionIdx int, players []PlayerInfo) QuestionIncorrect {
	return QuestionIncorrect{Type: TypeQuestionIncorrect, CategoryIdx: categoryIdx, QuestionIdx: questionIdx, Players: players}
}

func NewQuestionDismissed(categoryIdx, questionIdx int) QuestionDismissed {
	return QuestionDismissed{Type: TypeQuestionDismissed, CategoryIdx: categoryIdx, QuestionIdx: questionIdx}
}

func NewRoomClosed(message string) RoomClosed {
	return RoomClosed{Type: TypeRoomClosed, Message: message}
}

func NewError(message string) ErrorMessage {
	return ErrorMessage{Type: TypeError, Message: message}
}

// Encode serializes an outbound event to a JSON frame.
func Encode(m Outbound) ([]byte, error) {
	return json.Marshal(m)
}
