package ws

import (
	"github.com/rs/zerolog/log"

	"github.com/ddavidhe/jeppy/internal/protocol"
)

// Broadcaster fans server events out to a room's connections. Delivery is
// best-effort per connection: an unwritable connection is skipped, never an
// error for the caller. Within one connection, frames arrive in the order
// they were produced.
type Broadcaster struct {
	reg *Registry
}

// NewBroadcaster creates a dispatcher over the given registry.
func NewBroadcaster(reg *Registry) *Broadcaster {
	return &Broadcaster{reg: reg}
}

// All delivers an event to every live connection in a room.
func (b *Broadcaster) All(roomCode string, msg protocol.Outbound) {
	b.send(roomCode, "", msg)
}

// Except delivers an event to every live connection in a room except the one
// bound to exceptPlayerID.
func (b *Broadcaster) Except(roomCode, exceptPlayerID string, msg protocol.Outbound) {
	b.send(roomCode, exceptPlayerID, msg)
}

func (b *Broadcaster) send(roomCode, exceptPlayerID string, msg protocol.Outbound) {
	data, err := protocol.Encode(msg)
	if err != nil {
		log.Error().
			Err(err).
			Str("room_code", roomCode).
			Msg("Failed to encode broadcast message")
		return
	}

	for _, c := range b.reg.RoomConns(roomCode, exceptPlayerID) {
		if !c.Send(data) {
			log.Warn().
				Str("room_code", roomCode).
				Str("conn_id", c.ID()).
				Msg("Skipped unwritable connection during broadcast")
		}
	}
}

// unicast sends one event to a single connection.
func unicast(c Conn, msg protocol.Outbound) {
	data, err := protocol.Encode(msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode message")
		return
	}
	if !c.Send(data) {
		log.Warn().
			Str("conn_id", c.ID()).
			Msg("Failed to send message to connection")
	}
}
