package game

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitFrame(t *testing.T, s *session) ClientEnvelope {
	t.Helper()
	select {
	case data := <-s.outbox:
		var env ClientEnvelope
		require.NoError(t, json.Unmarshal(data, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return ClientEnvelope{}
	}
}

func TestRoom_ActorLoop(t *testing.T) {
	t.Parallel()
	tickers := &MockPeriodicTickerChannelCreator{}
	pingTicker := make(chan time.Time)
	idleTicker := make(chan time.Time)
	tickers.On("Create", pingInterval).Return(pingTicker)
	tickers.On("Create", time.Minute).Return(idleTicker)

	r := NewRoom(NewCardDealer(), NewRandomDrawer(), tickers, time.Minute*30)
	started := make(chan struct{})
	go r.Run(started)
	<-started
	defer r.Close()

	s := r.NewSession()
	r.RequestAttach(context.Background(), s)

	env := awaitFrame(t, s)
	assert.Equal(t, EventRoomState, env.Event)

	raw, _ := json.Marshal(CreateHostRequest{Name: "Ana"})
	s.roomChan <- inboundEvent{envelope: ClientEnvelope{Event: EventCreateHost, Data: raw}, from: s}

	env = awaitFrame(t, s)
	assert.Equal(t, EventHostCreated, env.Event)
	env = awaitFrame(t, s)
	assert.Equal(t, EventRoomState, env.Event)

	// A ping tick fans out to the session.
	pingReceived := make(chan struct{})
	go func() {
		<-s.pingChan
		close(pingReceived)
	}()
	time.Sleep(10 * time.Millisecond) // let the receiver block before the tick fires
	pingTicker <- time.Now()
	select {
	case <-pingReceived:
	case <-time.After(time.Second):
		t.Fatal("ping tick never reached the session")
	}

	// Removal detaches the session and cancels its context.
	s.removeMe <- s
	select {
	case <-s.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("detach never cancelled the session context")
	}

	tickers.AssertExpectations(t)
}

func TestRoom_ActorLoop_DroppedConnDoesNotBlockIdleReset(t *testing.T) {
	t.Parallel()
	tickers := &MockPeriodicTickerChannelCreator{}
	pingTicker := make(chan time.Time)
	idleTicker := make(chan time.Time)
	tickers.On("Create", pingInterval).Return(pingTicker)
	tickers.On("Create", time.Minute).Return(idleTicker)

	r := NewRoom(NewCardDealer(), NewRandomDrawer(), tickers, time.Minute*30)
	started := make(chan struct{})
	go r.Run(started)
	<-started
	defer r.Close()

	host := r.NewSession()
	r.RequestAttach(context.Background(), host)
	awaitFrame(t, host)
	raw, _ := json.Marshal(CreateHostRequest{Name: "Ana"})
	host.roomChan <- inboundEvent{envelope: ClientEnvelope{Event: EventCreateHost, Data: raw}, from: host}
	awaitFrame(t, host)
	awaitFrame(t, host)
	host.removeMe <- host
	<-host.ctx.Done()

	// A connection that dies right after upgrade has its removal and its
	// attach pending at the same time, in either order.
	ghost := r.NewSession()
	ghost.removeMe <- ghost
	r.RequestAttach(context.Background(), ghost)
	<-ghost.ctx.Done()

	// The dead session must not count as an attached one: the abandoned
	// generation still expires.
	idleTicker <- time.Now().Add(time.Hour)

	probe := r.NewSession()
	r.RequestAttach(context.Background(), probe)
	env := awaitFrame(t, probe)
	require.Equal(t, EventRoomState, env.Event)

	var roomState PublicRoomState
	require.NoError(t, json.Unmarshal(env.Data, &roomState))
	assert.Empty(t, roomState.HostName)
	assert.Empty(t, roomState.Players)
}

func TestRoom_ActorLoop_IdleTickResetsAbandonedRoom(t *testing.T) {
	t.Parallel()
	tickers := &MockPeriodicTickerChannelCreator{}
	pingTicker := make(chan time.Time)
	idleTicker := make(chan time.Time)
	tickers.On("Create", pingInterval).Return(pingTicker)
	tickers.On("Create", time.Minute).Return(idleTicker)

	r := NewRoom(NewCardDealer(), NewRandomDrawer(), tickers, time.Minute*30)
	started := make(chan struct{})
	go r.Run(started)
	<-started
	defer r.Close()

	s := r.NewSession()
	r.RequestAttach(context.Background(), s)
	awaitFrame(t, s)

	raw, _ := json.Marshal(CreateHostRequest{Name: "Ana"})
	s.roomChan <- inboundEvent{envelope: ClientEnvelope{Event: EventCreateHost, Data: raw}, from: s}
	awaitFrame(t, s)
	awaitFrame(t, s)

	s.removeMe <- s
	<-s.ctx.Done()

	// An idle tick far in the future resets the abandoned generation.
	idleTicker <- time.Now().Add(time.Hour)

	probe := r.NewSession()
	r.RequestAttach(context.Background(), probe)
	env := awaitFrame(t, probe)
	require.Equal(t, EventRoomState, env.Event)

	var roomState PublicRoomState
	require.NoError(t, json.Unmarshal(env.Data, &roomState))
	assert.Empty(t, roomState.HostName)
	assert.Empty(t, roomState.Players)
}
