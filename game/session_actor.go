package game

import "encoding/json"

// ReadPump decodes inbound frames and forwards them to the room inbox until
// the connection errors or the session context is cancelled. Malformed and
// rate-limited frames are dropped without feedback.
func (s *session) ReadPump(conn NetworkSession) {
	defer conn.Close("")

	for {
		data, err := conn.Read()
		if err != nil {
			break
		}
		if !s.limiter.Allow() {
			continue
		}

		var envelope ClientEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			continue
		}

		select {
		case s.roomChan <- inboundEvent{envelope: envelope, from: s}:
		case <-s.ctx.Done():
			return
		}
	}

	if s.removeMe == nil {
		return
	}
	select {
	case s.removeMe <- s:
	case <-s.ctx.Done():
	}
}

func (s *session) WritePump(conn NetworkSession) {
loop:
	for {
		select {
		case data, ok := <-s.outbox:
			if !ok {
				break loop
			}
			if err := conn.Write(data); err != nil {
				break loop
			}
		case <-s.pingChan:
			if err := conn.Ping(); err != nil {
				break loop
			}
		case <-s.ctx.Done():
			break loop
		}
	}
}
