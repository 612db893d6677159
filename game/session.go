package game

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type sessionRole int

const (
	ROLE_NONE sessionRole = iota
	ROLE_HOST
	ROLE_PLAYER
)

// session is one live connection. Identity (role, playerID) is bound by the
// room actor after createHost/joinAsPlayer/reclaim and is only ever touched
// from inside the actor.
type session struct {
	id        string
	outbox    chan []byte
	pingChan  chan struct{}
	limiter   *rate.Limiter
	roomChan  chan<- inboundEvent
	removeMe  chan<- *session
	ctx       context.Context
	cancelCtx context.CancelFunc

	role     sessionRole
	playerID string
}

func newSession(roomChan chan<- inboundEvent, removeMe chan<- *session) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		id:        uuid.NewString(),
		outbox:    make(chan []byte, 256),
		pingChan:  make(chan struct{}),
		limiter:   rate.NewLimiter(1, 5),
		roomChan:  roomChan,
		removeMe:  removeMe,
		ctx:       ctx,
		cancelCtx: cancel,
	}
}

// Send queues a frame for the write pump. It never blocks: a slow consumer
// loses frames instead of stalling the room actor.
func (s *session) Send(data []byte) error {
	select {
	case s.outbox <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (s *session) RequestPing() {
	select {
	case s.pingChan <- struct{}{}:
	default:
	}
}
