package game

import "strings"

// registry binds opaque secrets to durable identities so a fresh connection
// can reclaim its role after a drop. It lives for one room generation:
// restartGame preserves it, endGame discards it wholesale.
type registry struct {
	hostSecret      string
	playersBySecret map[string]string
}

func newRegistry() *registry {
	return &registry{playersBySecret: make(map[string]string)}
}

func (r *registry) RegisterHost() (string, error) {
	if r.hostSecret != "" {
		return "", ErrAlreadyExists
	}
	r.hostSecret = NewSecret()
	return r.hostSecret, nil
}

func (r *registry) RegisterPlayer(name string) (playerID, playerSecret string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", "", ErrInvalidArgument
	}
	playerID = NewPlayerID()
	playerSecret = NewSecret()
	r.playersBySecret[playerSecret] = playerID
	return playerID, playerSecret, nil
}

func (r *registry) ReclaimHost(secret string) error {
	if r.hostSecret == "" || secret != r.hostSecret {
		return ErrNotFound
	}
	return nil
}

func (r *registry) ReclaimPlayer(secret string) (string, error) {
	playerID, ok := r.playersBySecret[secret]
	if !ok {
		return "", ErrNotFound
	}
	return playerID, nil
}
