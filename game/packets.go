package game

import "encoding/json"

// Inbound event names.
const (
	EventCreateHost    = "createHost"
	EventJoinAsPlayer  = "joinAsPlayer"
	EventStartGame     = "startGame"
	EventDrawNumber    = "drawNumber"
	EventMarkCell      = "markCell"
	EventClaimBingo    = "claimBingo"
	EventRestartGame   = "restartGame"
	EventEndGame       = "endGame"
	EventReclaimHost   = "reclaimHost"
	EventReclaimPlayer = "reclaimPlayer"
)

// Outbound event names.
const (
	EventHostCreated     = "hostCreated"
	EventPlayerJoined    = "playerJoined"
	EventRoomState       = "roomState"
	EventGameStarted     = "gameStarted"
	EventMyCard          = "myCard"
	EventNumberDrawn     = "numberDrawn"
	EventBingoResult     = "bingoResult"
	EventGameRestarted   = "gameRestarted"
	EventGameEnded       = "gameEnded"
	EventHostReclaimed   = "hostReclaimed"
	EventPlayerReclaimed = "playerReclaimed"
	EventError           = "error"
)

type ClientEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type ServerEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type inboundEvent struct {
	envelope ClientEnvelope
	from     *session
}

// Inbound payloads.

type CreateHostRequest struct {
	Name string `json:"name"`
}

type JoinAsPlayerRequest struct {
	Name string `json:"name"`
}

type StartGameRequest struct {
	SelectedLetter string `json:"selectedLetter"`
}

type MarkCellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ReclaimHostRequest struct {
	HostSecret string `json:"hostSecret"`
}

type ReclaimPlayerRequest struct {
	PlayerSecret string `json:"playerSecret"`
}

// Outbound payloads. Room is always the public projection: no secrets, no
// other players' cards.

type PublicPlayerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

type PublicRoomState struct {
	ID             string             `json:"id"`
	HostName       string             `json:"hostName"`
	Players        []PublicPlayerView `json:"players"`
	State          string             `json:"state"`
	SelectedLetter string             `json:"selectedLetter,omitempty"`
	DrawnNumbers   []BingoNumber      `json:"drawnNumbers"`
	WinnerID       string             `json:"winnerId,omitempty"`
}

type CardView struct {
	ID      string     `json:"id"`
	Numbers [5][5]*int `json:"numbers"`
	Marked  [5][5]bool `json:"marked"`
}

type HostCreatedPayload struct {
	Room       PublicRoomState `json:"room"`
	HostSecret string          `json:"hostSecret"`
}

type PlayerJoinedPayload struct {
	Room         PublicRoomState `json:"room"`
	PlayerSecret string          `json:"playerSecret"`
	PlayerID     string          `json:"playerId"`
}

type BingoResultPayload struct {
	Valid      bool   `json:"valid"`
	WinnerID   string `json:"winnerId,omitempty"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type PlayerReclaimedPayload struct {
	Room     PublicRoomState `json:"room"`
	PlayerID string          `json:"playerId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func marshalEvent(event string, data any) []byte {
	b, _ := json.Marshal(ServerEnvelope{Event: event, Data: data})
	return b
}
