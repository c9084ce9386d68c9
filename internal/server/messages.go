package server

import "github.com/sunandbean/cashflow-server-go/internal/game"

// Client-to-server message types.
const (
	MsgCreateRoom       = "create_room"
	MsgJoinRoom         = "join_room"
	MsgLeaveRoom        = "leave_room"
	MsgChooseProfession = "choose_profession"
	MsgStartGame        = "start_game"
	MsgAction           = "action"
	MsgGetState         = "get_state"
	MsgProfessions      = "list_professions"
)

// Server-to-client message types.
const (
	MsgRoomState       = "room_state"
	MsgGameState       = "game_state"
	MsgActionResult    = "action_result"
	MsgProfessionsList = "professions"
	MsgError           = "error"
)

// ClientMessage is the envelope for everything a client sends.
type ClientMessage struct {
	Type       string       `json:"type"`
	RoomID     string       `json:"room_id,omitempty"`
	RoomName   string       `json:"room_name,omitempty"`
	Password   string       `json:"password,omitempty"`
	PlayerName string       `json:"player_name,omitempty"`
	Profession string       `json:"profession,omitempty"`
	Action     *game.Action `json:"action,omitempty"`
}

// ServerMessage is the envelope for everything the server sends.
type ServerMessage struct {
	Type        string            `json:"type"`
	RoomID      string            `json:"room_id,omitempty"`
	GameID      string            `json:"game_id,omitempty"`
	Error       string            `json:"error,omitempty"`
	Result      string            `json:"result,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	Room        *RoomSnapshot     `json:"room,omitempty"`
	State       *game.GameState   `json:"state,omitempty"`
	Valid       []game.ActionType `json:"valid_actions,omitempty"`
	Professions []string          `json:"professions,omitempty"`
}

// RoomSnapshot is the public view of a room.
type RoomSnapshot struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	HostID  string       `json:"host_id"`
	Private bool         `json:"private"`
	GameID  string       `json:"game_id,omitempty"`
	Members []RoomMember `json:"members"`
}

// RoomMember is one seat in a room.
type RoomMember struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Profession string `json:"profession,omitempty"`
}
