package ws

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ddavidhe/jeppy/internal/board"
	"github.com/ddavidhe/jeppy/internal/game"
	"github.com/ddavidhe/jeppy/internal/protocol"
)

// Gateway is the control surface between connections and rooms. It decodes
// inbound frames, resolves the acting (room, player) pair through the
// registry, applies the command on the room, and hands the resulting events
// to the broadcaster. It owns no game state of its own.
type Gateway struct {
	store    *game.Store
	reg      *Registry
	bc       *Broadcaster
	template []board.CategoryTemplate
}

// NewGateway wires the gateway to a room store and the dataset template new
// boards are built from.
func NewGateway(store *game.Store, reg *Registry, template []board.CategoryTemplate) *Gateway {
	return &Gateway{
		store:    store,
		reg:      reg,
		bc:       NewBroadcaster(reg),
		template: template,
	}
}

// HandleMessage processes one inbound frame from a connection. Malformed or
// unknown frames are dropped without a reply.
func (g *Gateway) HandleMessage(c Conn, raw []byte) {
	msg, err := protocol.DecodeInbound(raw)
	if err != nil {
		log.Debug().
			Err(err).
			Str("conn_id", c.ID()).
			Msg("Dropped undecodable message")
		return
	}

	switch m := msg.(type) {
	case protocol.CreateRoom:
		g.createRoom(c, m)
	case protocol.JoinRoom:
		g.joinRoom(c, m)
	default:
		g.roomAction(c, msg)
	}
}

// createRoom handles create_room: validates the name, makes the room with
// the sender as host, and binds the connection to the new identity.
func (g *Gateway) createRoom(c Conn, m protocol.CreateRoom) {
	if _, _, bound := g.reg.Lookup(c.ID()); bound {
		return // already in a room; stale or misbehaving client
	}

	name := strings.TrimSpace(m.Name)
	if name == "" {
		unicast(c, protocol.NewError("Name is required."))
		return
	}

	room, created := g.store.Create(name, g.template)
	g.reg.Bind(c, created.PlayerID, room.Code())
	unicast(c, created)

	log.Info().
		Str("room_code", room.Code()).
		Str("player_id", created.PlayerID).
		Str("player_name", name).
		Msg("Created room")
}

// joinRoom handles join_room: validates name and code, adds the player to
// the room's roster, and tells everyone else.
func (g *Gateway) joinRoom(c Conn, m protocol.JoinRoom) {
	if _, _, bound := g.reg.Lookup(c.ID()); bound {
		return
	}

	name := strings.TrimSpace(m.Name)
	code := strings.ToUpper(strings.TrimSpace(m.Code))
	if name == "" {
		unicast(c, protocol.NewError("Name is required."))
		return
	}
	if code == "" {
		unicast(c, protocol.NewError("Room code is required."))
		return
	}

	room, found := g.store.Get(code)
	if !found {
		unicast(c, protocol.NewError(game.ErrRoomNotFound.Error()))
		return
	}

	joined, notify, err := room.Join(name)
	if err != nil {
		if errors.Is(err, game.ErrGameInProgress) {
			unicast(c, protocol.NewError(err.Error()))
			return
		}
		log.Error().
			Err(err).
			Str("room_code", code).
			Msg("Join failed")
		return
	}

	g.reg.Bind(c, joined.PlayerID, code)
	unicast(c, joined)
	g.bc.Except(code, joined.PlayerID, notify)

	log.Info().
		Str("room_code", code).
		Str("player_id", joined.PlayerID).
		Str("player_name", name).
		Int("player_count", len(joined.Players)).
		Msg("Player joined room")
}

// roomAction dispatches an in-room command. The connection must be bound to
// a live room; the room itself decides whether the actor and phase allow the
// transition. A rejected transition produces no reply: legitimate clients
// gate these actions in the UI, so anything invalid here is stale or probing.
func (g *Gateway) roomAction(c Conn, msg protocol.Inbound) {
	playerID, roomCode, bound := g.reg.Lookup(c.ID())
	if !bound {
		return
	}
	room, found := g.store.Get(roomCode)
	if !found {
		return
	}

	var (
		evt protocol.Outbound
		ok  bool
	)
	switch m := msg.(type) {
	case protocol.StartGame:
		evt, ok = room.Start(playerID)
	case protocol.SelectQuestion:
		evt, ok = room.Select(playerID, m.CategoryIdx, m.QuestionIdx)
	case protocol.BuzzIn:
		evt, ok = room.Buzz(playerID)
	case protocol.MarkCorrect:
		evt, ok = room.MarkCorrect(playerID)
	case protocol.MarkIncorrect:
		evt, ok = room.MarkIncorrect(playerID)
	case protocol.DismissQuestion:
		evt, ok = room.Dismiss(playerID)
	default:
		return
	}
	if !ok {
		return
	}

	g.bc.All(roomCode, evt)
}

// HandleDisconnect reacts to a connection closing. A departing player is
// removed from the roster; a departing host tears the whole room down after
// the remaining connections have been told.
func (g *Gateway) HandleDisconnect(c Conn) {
	playerID, roomCode, bound := g.reg.Unbind(c.ID())
	if !bound {
		return
	}
	room, found := g.store.Get(roomCode)
	if !found {
		return
	}

	evt, hostLeft, removed := room.Leave(playerID)
	if hostLeft {
		g.bc.All(roomCode, protocol.NewRoomClosed("The host disconnected. Room closed."))
		g.reg.DropRoom(roomCode)
		g.store.Delete(roomCode)

		log.Info().
			Str("room_code", roomCode).
			Str("player_id", playerID).
			Msg("Host disconnected, room closed")
		return
	}
	if !removed {
		return
	}

	g.bc.All(roomCode, evt)
	log.Info().
		Str("room_code", roomCode).
		Str("player_id", playerID).
		Msg("Player disconnected")
}
