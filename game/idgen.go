package game

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

func NewRoomID() string   { return uuid.NewString() }
func NewPlayerID() string { return uuid.NewString() }
func NewCardID() string   { return uuid.NewString() }

// NewSecret mints an opaque capability token. Possession is the credential,
// so the source must be cryptographically strong.
func NewSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
