package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sunandbean/cashflow-server-go/internal/game"
)

// Room is a pre-game lobby. Members pick professions; the host starts the
// match, which binds the room to a session.
type Room struct {
	ID     string
	Name   string
	HostID string

	passwordHash []byte

	mu          sync.RWMutex
	memberOrder []string
	members     map[string]string // player id -> display name
	professions map[string]string // player id -> chosen profession
	gameID      string
}

// NewRoom creates a room hosted by hostID. A non-empty password makes the
// room private; joiners must present it.
func NewRoom(name, hostID, hostName, password string) (*Room, error) {
	r := &Room{
		ID:          uuid.New().String(),
		Name:        name,
		HostID:      hostID,
		members:     map[string]string{hostID: hostName},
		memberOrder: []string{hostID},
		professions: make(map[string]string),
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash room password: %w", err)
		}
		r.passwordHash = hash
	}
	return r, nil
}

// Private reports whether joining requires a password.
func (r *Room) Private() bool { return len(r.passwordHash) > 0 }

// Join adds a player. Private rooms reject a wrong or missing password.
func (r *Room) Join(playerID, name, password string) error {
	if r.Private() {
		if err := bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)); err != nil {
			return fmt.Errorf("wrong room password")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameID != "" {
		return fmt.Errorf("game already started")
	}
	if _, exists := r.members[playerID]; exists {
		return fmt.Errorf("player already joined")
	}
	if len(r.members) >= game.MaxPlayers {
		return fmt.Errorf("room is full")
	}

	r.members[playerID] = name
	r.memberOrder = append(r.memberOrder, playerID)
	return nil
}

// Leave removes a player. The room reports empty when the last member left.
func (r *Room) Leave(playerID string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members, playerID)
	delete(r.professions, playerID)
	for i, id := range r.memberOrder {
		if id == playerID {
			r.memberOrder = append(r.memberOrder[:i], r.memberOrder[i+1:]...)
			break
		}
	}
	if r.HostID == playerID && len(r.memberOrder) > 0 {
		r.HostID = r.memberOrder[0]
	}
	return len(r.members) == 0
}

// Has reports whether playerID is a member.
func (r *Room) Has(playerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[playerID]
	return ok
}

// ChooseProfession records a member's profession pick.
func (r *Room) ChooseProfession(playerID, profession string) error {
	if _, ok := game.ProfessionByName(profession); !ok {
		return fmt.Errorf("unknown profession %q", profession)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[playerID]; !exists {
		return fmt.Errorf("player not in room")
	}
	if r.gameID != "" {
		return fmt.Errorf("game already started")
	}
	r.professions[playerID] = profession
	return nil
}

// Setups builds the player setups for game start, in join order. Every
// member must have chosen a profession.
func (r *Room) Setups() ([]game.PlayerSetup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.memberOrder) < game.MinPlayers {
		return nil, fmt.Errorf("need at least %d players", game.MinPlayers)
	}
	setups := make([]game.PlayerSetup, 0, len(r.memberOrder))
	for _, id := range r.memberOrder {
		profession, ok := r.professions[id]
		if !ok {
			return nil, fmt.Errorf("%s has not chosen a profession", r.members[id])
		}
		setups = append(setups, game.PlayerSetup{
			ID:         id,
			Name:       r.members[id],
			Profession: profession,
		})
	}
	return setups, nil
}

// BindGame links the room to its running match.
func (r *Room) BindGame(gameID string) {
	r.mu.Lock()
	r.gameID = gameID
	r.mu.Unlock()
}

// GameID returns the bound match id, empty before start.
func (r *Room) GameID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gameID
}

// Snapshot returns the public view of the room.
func (r *Room) Snapshot() RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]RoomMember, 0, len(r.memberOrder))
	for _, id := range r.memberOrder {
		members = append(members, RoomMember{
			PlayerID:   id,
			Name:       r.members[id],
			Profession: r.professions[id],
		})
	}
	return RoomSnapshot{
		ID:      r.ID,
		Name:    r.Name,
		HostID:  r.HostID,
		Private: r.Private(),
		GameID:  r.gameID,
		Members: members,
	}
}
