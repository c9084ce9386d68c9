package server

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/sunandbean/cashflow-server-go/internal/config"
	"github.com/sunandbean/cashflow-server-go/internal/game"
	"github.com/sunandbean/cashflow-server-go/internal/session"
)

// Hub routes websocket clients into rooms and running sessions.
type Hub struct {
	cfg      config.GameConfig
	logger   *zap.Logger
	sessions *session.Manager

	register   chan *Client
	unregister chan *Client

	mu      sync.RWMutex
	clients map[*Client]bool
	rooms   map[string]*Room
}

// NewHub creates a hub over the given session manager.
func NewHub(cfg config.GameConfig, sessions *session.Manager, logger *zap.Logger) *Hub {
	return &Hub{
		cfg:        cfg,
		logger:     logger,
		sessions:   sessions,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]*Room),
	}
}

// Run processes client registration until ctx ends.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("client connected", zap.String("player_id", client.playerID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.dropFromRoom(client)
			h.logger.Info("client disconnected", zap.String("player_id", client.playerID))
		}
	}
}

// handleMessage dispatches one decoded client message.
func (h *Hub) handleMessage(ctx context.Context, client *Client, msg ClientMessage) {
	switch msg.Type {
	case MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case MsgLeaveRoom:
		h.handleLeaveRoom(client)
	case MsgChooseProfession:
		h.handleChooseProfession(client, msg)
	case MsgStartGame:
		h.handleStartGame(ctx, client)
	case MsgAction:
		h.handleAction(ctx, client, msg)
	case MsgGetState:
		h.handleGetState(client)
	case MsgProfessions:
		client.sendMessage(ServerMessage{Type: MsgProfessionsList, Professions: game.ProfessionNames()})
	default:
		client.sendError("unknown message type: " + msg.Type)
	}
}

func (h *Hub) handleCreateRoom(client *Client, msg ClientMessage) {
	if msg.PlayerName != "" {
		client.name = msg.PlayerName
	}
	room, err := NewRoom(msg.RoomName, client.playerID, client.name, msg.Password)
	if err != nil {
		client.sendError(err.Error())
		return
	}

	h.mu.Lock()
	h.rooms[room.ID] = room
	h.mu.Unlock()
	client.roomID = room.ID

	h.logger.Info("room created",
		zap.String("room_id", room.ID),
		zap.String("host", client.playerID),
		zap.Bool("private", room.Private()),
	)
	h.broadcastRoom(room)
}

func (h *Hub) handleJoinRoom(client *Client, msg ClientMessage) {
	room, ok := h.room(msg.RoomID)
	if !ok {
		client.sendError("room not found")
		return
	}
	if msg.PlayerName != "" {
		client.name = msg.PlayerName
	}
	if err := room.Join(client.playerID, client.name, msg.Password); err != nil {
		client.sendError(err.Error())
		return
	}
	client.roomID = room.ID
	h.broadcastRoom(room)
}

func (h *Hub) handleLeaveRoom(client *Client) {
	h.dropFromRoom(client)
}

func (h *Hub) handleChooseProfession(client *Client, msg ClientMessage) {
	room, ok := h.room(client.roomID)
	if !ok {
		client.sendError("not in a room")
		return
	}
	if err := room.ChooseProfession(client.playerID, msg.Profession); err != nil {
		client.sendError(err.Error())
		return
	}
	h.broadcastRoom(room)
}

func (h *Hub) handleStartGame(ctx context.Context, client *Client) {
	room, ok := h.room(client.roomID)
	if !ok {
		client.sendError("not in a room")
		return
	}
	if room.HostID != client.playerID {
		client.sendError("only the host may start the game")
		return
	}
	if room.GameID() != "" {
		client.sendError("game already started")
		return
	}

	setups, err := room.Setups()
	if err != nil {
		client.sendError(err.Error())
		return
	}

	seed := h.cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	sess, err := h.sessions.Create(ctx, setups, seed)
	if err != nil {
		client.sendError(err.Error())
		return
	}
	room.BindGame(sess.ID)

	h.logger.Info("game started",
		zap.String("room_id", room.ID),
		zap.String("game_id", sess.ID),
		zap.Int("players", len(setups)),
	)
	h.broadcastRoom(room)
	h.broadcastState(room, sess)
}

func (h *Hub) handleAction(ctx context.Context, client *Client, msg ClientMessage) {
	room, sess, ok := h.roomSession(client)
	if !ok {
		client.sendError("no running game")
		return
	}
	if msg.Action == nil {
		client.sendError("action payload missing")
		return
	}

	action := *msg.Action
	// The sender acts only as itself.
	action.PlayerID = client.playerID

	res, err := sess.Submit(ctx, action)
	if err != nil {
		client.sendError(err.Error())
		return
	}
	client.sendMessage(ServerMessage{
		Type:   MsgActionResult,
		GameID: sess.ID,
		Result: res.Code.String(),
		Reason: res.Reason,
	})
	if res.OK() {
		h.broadcastState(room, sess)
	}
}

func (h *Hub) handleGetState(client *Client) {
	_, sess, ok := h.roomSession(client)
	if !ok {
		client.sendError("no running game")
		return
	}
	state := sess.PublicState()
	client.sendMessage(ServerMessage{
		Type:   MsgGameState,
		GameID: sess.ID,
		State:  state,
		Valid:  game.ValidActions(state),
	})
}

// room looks a room up by id.
func (h *Hub) room(id string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[id]
	return room, ok
}

// roomSession resolves the client's room and its bound session.
func (h *Hub) roomSession(client *Client) (*Room, *session.Session, bool) {
	room, ok := h.room(client.roomID)
	if !ok || room.GameID() == "" {
		return nil, nil, false
	}
	sess, ok := h.sessions.Get(room.GameID())
	if !ok {
		return nil, nil, false
	}
	return room, sess, true
}

// dropFromRoom removes a client from its room, tearing the room down when it
// empties.
func (h *Hub) dropFromRoom(client *Client) {
	room, ok := h.room(client.roomID)
	if !ok {
		return
	}
	client.roomID = ""

	if room.Leave(client.playerID) {
		h.mu.Lock()
		delete(h.rooms, room.ID)
		h.mu.Unlock()
		if gameID := room.GameID(); gameID != "" {
			h.sessions.Remove(gameID)
		}
		h.logger.Info("room closed", zap.String("room_id", room.ID))
		return
	}
	h.broadcastRoom(room)
}

// broadcastRoom sends the room snapshot to every member.
func (h *Hub) broadcastRoom(room *Room) {
	snap := room.Snapshot()
	h.toRoom(room, ServerMessage{Type: MsgRoomState, RoomID: room.ID, Room: &snap})
}

// broadcastState sends the sanitized game state to every room member.
func (h *Hub) broadcastState(room *Room, sess *session.Session) {
	state := sess.PublicState()
	h.toRoom(room, ServerMessage{
		Type:   MsgGameState,
		RoomID: room.ID,
		GameID: sess.ID,
		State:  state,
		Valid:  game.ValidActions(state),
	})
}

// toRoom fans one message out to the room's connected members. Slow clients
// are skipped rather than blocking the hub.
func (h *Hub) toRoom(room *Room, msg ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client.roomID != room.ID {
			continue
		}
		select {
		case client.send <- payload:
		default:
		}
	}
}
