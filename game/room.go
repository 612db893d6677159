package game

import (
	"context"
	"time"

	"bingo/logger"
)

// Room is the single authoritative aggregate: one host, many players, one
// game at a time. Every mutation goes through the actor loop in Run, so the
// fields below are only ever touched from that goroutine.
type Room struct {
	// Identity / game state
	id             string
	hostName       string
	state          GameState
	selectedLetter string
	drawnNumbers   []BingoNumber
	winnerID       string

	// Players, insertion-ordered for display
	players     []*Player
	playersByID map[string]*Player

	// Sessions currently attached to this room
	sessions    map[*session]struct{}
	hostSession *session

	registry *registry
	dealer   CardDealer
	drawer   NumberDrawer

	idleTimeout   time.Duration
	lastActivity  time.Time
	tickerCreator PeriodicTickerChannelCreator

	// Communication
	inbox    chan inboundEvent
	attach   chan *session
	removals chan *session
	done     chan struct{}
}

func NewRoom(dealer CardDealer, drawer NumberDrawer, tickerCreator PeriodicTickerChannelCreator, idleTimeout time.Duration) *Room {
	return &Room{
		id:            NewRoomID(),
		state:         STATE_WAITING,
		drawnNumbers:  make([]BingoNumber, 0, totalNumbers),
		playersByID:   make(map[string]*Player),
		sessions:      make(map[*session]struct{}),
		registry:      newRegistry(),
		dealer:        dealer,
		drawer:        drawer,
		idleTimeout:   idleTimeout,
		lastActivity:  time.Now(),
		tickerCreator: tickerCreator,
		inbox:         make(chan inboundEvent, 1024),
		attach:        make(chan *session, 64),
		removals:      make(chan *session, 64),
		done:          make(chan struct{}),
	}
}

// NewSession creates an unbound session wired to this room's inbox.
func (r *Room) NewSession() *session {
	return newSession(r.inbox, r.removals)
}

func (r *Room) RequestAttach(ctx context.Context, s *session) {
	select {
	case r.attach <- s:
	case <-ctx.Done():
	}
}

func (r *Room) Close() {
	close(r.done)
}

func (r *Room) publicState() PublicRoomState {
	players := make([]PublicPlayerView, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, PublicPlayerView{ID: p.id, Name: p.name})
	}
	return PublicRoomState{
		ID:             r.id,
		HostName:       r.hostName,
		Players:        players,
		State:          r.state.String(),
		SelectedLetter: r.selectedLetter,
		DrawnNumbers:   r.drawnNumbers,
		WinnerID:       r.winnerID,
	}
}

func (r *Room) sendTo(s *session, event string, data any) {
	if err := s.Send(marshalEvent(event, data)); err != nil {
		logger.Warningf("session %s: dropping %s frame: %v", s.id, event, err)
	}
}

func (r *Room) broadcast(event string, data any) {
	frame := marshalEvent(event, data)
	for s := range r.sessions {
		if err := s.Send(frame); err != nil {
			logger.Warningf("session %s: dropping %s frame: %v", s.id, event, err)
		}
	}
}

func (r *Room) broadcastRoomState() {
	r.broadcast(EventRoomState, r.publicState())
}

func (r *Room) sendError(s *session, err error) {
	r.sendTo(s, EventError, ErrorPayload{Message: err.Error()})
}

// playerFor resolves the calling session to its bound Player.
func (r *Room) playerFor(s *session) (*Player, error) {
	if s.role != ROLE_PLAYER {
		return nil, ErrForbidden
	}
	p, ok := r.playersByID[s.playerID]
	if !ok {
		return nil, ErrForbidden
	}
	return p, nil
}

// unbind releases any identity s currently holds, including the reverse
// pointers the room keeps to it. Reclaiming onto an already-bound session
// must go through here first or the old identity keeps routing frames to it.
func (r *Room) unbind(s *session) {
	if r.hostSession == s {
		r.hostSession = nil
	}
	if s.role == ROLE_PLAYER {
		if p, ok := r.playersByID[s.playerID]; ok && p.session == s {
			p.session = nil
		}
	}
	s.role = ROLE_NONE
	s.playerID = ""
}

func (r *Room) bindHost(s *session) {
	s.role = ROLE_HOST
	s.playerID = ""
	r.hostSession = s
}

// reset tears the whole room generation down: fresh id, no host, no players,
// every secret invalidated. Attached sessions survive but lose their roles.
func (r *Room) reset() {
	r.id = NewRoomID()
	r.hostName = ""
	r.state = STATE_WAITING
	r.selectedLetter = ""
	r.winnerID = ""
	r.drawnNumbers = make([]BingoNumber, 0, totalNumbers)
	r.players = nil
	r.playersByID = make(map[string]*Player)
	r.registry = newRegistry()
	r.hostSession = nil
	for s := range r.sessions {
		s.role = ROLE_NONE
		s.playerID = ""
	}
}
