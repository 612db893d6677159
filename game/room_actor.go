package game

import (
	"encoding/json"
	"strings"
	"time"

	"bingo/logger"
)

const pingInterval = time.Second * 30

// Run drains every inbound channel in one goroutine. This is the mutual
// exclusion of the whole engine: no mutation of room state happens anywhere
// else, so draws, claims and joins can never interleave.
func (r *Room) Run(started chan struct{}) {
	pingTicker := r.tickerCreator.Create(pingInterval)
	idleTicker := r.tickerCreator.Create(time.Minute)

	close(started)

	for {
		select {
		case ev := <-r.inbox:
			r.lastActivity = time.Now()
			r.dispatch(ev)

		case s := <-r.attach:
			r.lastActivity = time.Now()
			r.handleAttach(s)

		case s := <-r.removals:
			r.handleDetach(s)

		case <-pingTicker:
			for s := range r.sessions {
				s.RequestPing()
			}

		case now := <-idleTicker:
			r.checkIdle(now)

		case <-r.done:
			return
		}
	}
}

func (r *Room) dispatch(ev inboundEvent) {
	var err error

	switch ev.envelope.Event {
	case EventCreateHost:
		err = r.handleCreateHost(ev.from, ev.envelope.Data)
	case EventJoinAsPlayer:
		err = r.handleJoinAsPlayer(ev.from, ev.envelope.Data)
	case EventStartGame:
		err = r.handleStartGame(ev.from, ev.envelope.Data)
	case EventDrawNumber:
		err = r.handleDrawNumber(ev.from)
	case EventMarkCell:
		err = r.handleMarkCell(ev.from, ev.envelope.Data)
	case EventClaimBingo:
		err = r.handleClaimBingo(ev.from)
	case EventRestartGame:
		err = r.handleRestartGame(ev.from)
	case EventEndGame:
		err = r.handleEndGame(ev.from)
	case EventReclaimHost:
		err = r.handleReclaimHost(ev.from, ev.envelope.Data)
	case EventReclaimPlayer:
		err = r.handleReclaimPlayer(ev.from, ev.envelope.Data)
	default:
		err = ErrInvalidArgument
	}

	if err != nil {
		r.sendError(ev.from, err)
	}
}

func (r *Room) handleAttach(s *session) {
	// A connection can drop right after upgrade, so its removal may be
	// processed before its attach. A cancelled session has no pumps left;
	// inserting it would leave a zombie in the session set.
	if s.ctx.Err() != nil {
		return
	}
	r.sessions[s] = struct{}{}
	r.sendTo(s, EventRoomState, r.publicState())
}

func (r *Room) handleDetach(s *session) {
	delete(r.sessions, s)
	if r.hostSession == s {
		r.hostSession = nil
	}
	if s.role == ROLE_PLAYER {
		if p, ok := r.playersByID[s.playerID]; ok && p.session == s {
			p.session = nil
		}
	}
	s.cancelCtx()
}

func (r *Room) handleCreateHost(from *session, data json.RawMessage) error {
	var req CreateHostRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrInvalidArgument
	}
	if from.role != ROLE_NONE {
		return ErrForbidden
	}
	hostSecret, err := r.registry.RegisterHost()
	if err != nil {
		return err
	}

	r.hostName = name
	r.bindHost(from)
	logger.Infof("room %s: host %q created", r.id, name)

	r.sendTo(from, EventHostCreated, HostCreatedPayload{Room: r.publicState(), HostSecret: hostSecret})
	r.broadcastRoomState()
	return nil
}

func (r *Room) handleJoinAsPlayer(from *session, data json.RawMessage) error {
	var req JoinAsPlayerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	if from.role != ROLE_NONE {
		return ErrForbidden
	}
	if r.hostName == "" || r.state != STATE_WAITING {
		return ErrRoomNotJoinable
	}
	playerID, playerSecret, err := r.registry.RegisterPlayer(req.Name)
	if err != nil {
		return err
	}

	p := &Player{
		id:      playerID,
		name:    strings.TrimSpace(req.Name),
		secret:  playerSecret,
		session: from,
	}
	r.players = append(r.players, p)
	r.playersByID[playerID] = p
	from.role = ROLE_PLAYER
	from.playerID = playerID
	logger.Infof("room %s: player %q joined", r.id, p.name)

	r.sendTo(from, EventPlayerJoined, PlayerJoinedPayload{
		Room:         r.publicState(),
		PlayerSecret: playerSecret,
		PlayerID:     playerID,
	})
	r.broadcastRoomState()
	return nil
}

func (r *Room) handleStartGame(from *session, data json.RawMessage) error {
	if from.role != ROLE_HOST {
		return ErrForbidden
	}
	if r.state != STATE_WAITING {
		return ErrInvalidTransition
	}
	var req StartGameRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	letter := strings.ToUpper(strings.TrimSpace(req.SelectedLetter))
	if _, ok := PatternFor(letter); !ok {
		return ErrInvalidArgument
	}

	r.selectedLetter = letter
	r.drawnNumbers = r.drawnNumbers[:0]
	r.winnerID = ""
	for _, p := range r.players {
		p.card = r.dealer.Deal()
	}
	r.state = STATE_PLAYING
	logger.Infof("room %s: game started with pattern %s", r.id, letter)

	r.broadcast(EventGameStarted, r.publicState())
	for _, p := range r.players {
		if p.session != nil {
			r.sendTo(p.session, EventMyCard, p.card.View())
		}
	}
	return nil
}

func (r *Room) handleDrawNumber(from *session) error {
	if from.role != ROLE_HOST {
		return ErrForbidden
	}
	if r.state != STATE_PLAYING {
		return ErrInvalidTransition
	}
	number, err := r.drawer.Draw(r.drawnNumbers)
	if err != nil {
		return err
	}

	r.drawnNumbers = append(r.drawnNumbers, number)
	logger.Debugf("room %s: drew %s-%d", r.id, number.Letter, number.Value)

	r.broadcast(EventNumberDrawn, number)
	r.broadcastRoomState()
	return nil
}

func (r *Room) handleMarkCell(from *session, data json.RawMessage) error {
	p, err := r.playerFor(from)
	if err != nil {
		return err
	}
	if r.state != STATE_PLAYING || p.card == nil {
		return ErrInvalidTransition
	}
	var req MarkCellRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	if req.Row < 0 || req.Row > 4 || req.Col < 0 || req.Col > 4 {
		return ErrInvalidArgument
	}
	// The free center never toggles.
	if req.Row == 2 && req.Col == 2 {
		return nil
	}
	p.card.marked[req.Row][req.Col] = !p.card.marked[req.Row][req.Col]
	return nil
}

func (r *Room) handleClaimBingo(from *session) error {
	p, err := r.playerFor(from)
	if err != nil {
		return err
	}
	if r.state != STATE_PLAYING || p.card == nil {
		return ErrInvalidTransition
	}

	if !AdjudicateClaim(p.card, r.drawnNumbers, r.selectedLetter) {
		logger.Infof("room %s: invalid bingo claim by %q", r.id, p.name)
		result := BingoResultPayload{Valid: false, PlayerID: p.id, PlayerName: p.name}
		r.sendTo(from, EventBingoResult, result)
		if r.hostSession != nil && r.hostSession != from {
			r.sendTo(r.hostSession, EventBingoResult, result)
		}
		return nil
	}

	r.winnerID = p.id
	r.state = STATE_FINISHED
	logger.Infof("room %s: %q wins", r.id, p.name)

	r.broadcast(EventBingoResult, BingoResultPayload{
		Valid:      true,
		WinnerID:   p.id,
		PlayerID:   p.id,
		PlayerName: p.name,
	})
	r.broadcastRoomState()
	return nil
}

func (r *Room) handleRestartGame(from *session) error {
	if from.role != ROLE_HOST {
		return ErrForbidden
	}
	if r.state != STATE_FINISHED {
		return ErrInvalidTransition
	}

	r.drawnNumbers = r.drawnNumbers[:0]
	r.selectedLetter = ""
	r.winnerID = ""
	for _, p := range r.players {
		p.card = nil
	}
	r.state = STATE_WAITING
	logger.Infof("room %s: game restarted", r.id)

	r.broadcast(EventGameRestarted, r.publicState())
	return nil
}

func (r *Room) handleEndGame(from *session) error {
	if from.role != ROLE_HOST {
		return ErrForbidden
	}

	logger.Infof("room %s: game ended by host", r.id)
	r.reset()
	r.broadcast(EventGameEnded, r.publicState())
	return nil
}

func (r *Room) handleReclaimHost(from *session, data json.RawMessage) error {
	var req ReclaimHostRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	if err := r.registry.ReclaimHost(req.HostSecret); err != nil {
		return err
	}

	r.unbind(from)
	if r.hostSession != nil {
		r.unbind(r.hostSession)
	}
	r.bindHost(from)
	logger.Infof("room %s: host reclaimed", r.id)

	r.sendTo(from, EventHostReclaimed, r.publicState())
	return nil
}

func (r *Room) handleReclaimPlayer(from *session, data json.RawMessage) error {
	var req ReclaimPlayerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ErrInvalidArgument
	}
	playerID, err := r.registry.ReclaimPlayer(req.PlayerSecret)
	if err != nil {
		return err
	}
	p, ok := r.playersByID[playerID]
	if !ok {
		return ErrNotFound
	}

	r.unbind(from)
	if p.session != nil {
		r.unbind(p.session)
	}
	p.session = from
	from.role = ROLE_PLAYER
	from.playerID = playerID
	logger.Infof("room %s: player %q reclaimed", r.id, p.name)

	r.sendTo(from, EventPlayerReclaimed, PlayerReclaimedPayload{Room: r.publicState(), PlayerID: playerID})
	if p.card != nil {
		r.sendTo(from, EventMyCard, p.card.View())
	}
	return nil
}

// checkIdle resets an abandoned room generation: no attached sessions and no
// activity for idleTimeout. Keeps reclaim working through any shorter outage.
func (r *Room) checkIdle(now time.Time) {
	if r.idleTimeout <= 0 || r.hostName == "" {
		return
	}
	if len(r.sessions) > 0 {
		return
	}
	if now.Sub(r.lastActivity) < r.idleTimeout {
		return
	}
	logger.Infof("room %s: idle for %s with no sessions, resetting", r.id, r.idleTimeout)
	r.reset()
}
