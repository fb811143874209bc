package game

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// codeAlphabet excludes I, O, 1, and 0 so codes survive being read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codeLength is the fixed room code length.
const codeLength = 4

// generateRoomCode creates a random room code. Uniqueness against live rooms
// is the store's job.
func generateRoomCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}

// newPlayerID creates a high-entropy opaque player identity. IDs double as
// the only credential tying a connection to a player, so they must not be
// guessable.
func newPlayerID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
