package server

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var errRoomNotFound = errors.New("room not found")

// RoomStore owns every live room. All mutations run under its lock, which
// serializes room state changes the way the single event loop of a
// cooperative runtime would.
type RoomStore struct {
	mu     sync.Mutex
	nextID int
	rooms  map[string]*Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		nextID: 1000,
		rooms:  make(map[string]*Room),
	}
}

// CreateRoom allocates a waiting room bound to the given host connection.
// The game code is redrawn until it is unique among live rooms.
func (s *RoomStore) CreateRoom(host *client) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("room-%d", s.nextID)
	s.nextID++
	room := &Room{
		ID:       id,
		GameCode: s.newGameCodeLocked(),
		State:    stateWaiting,
		Host: Host{
			ID:        host.id,
			Connected: true,
			conn:      host,
		},
		Players:     make(map[string]*Player),
		Quiz:        []Song{},
		Guesses:     make(map[string]guessRecord),
		UsedButtons: []int{},
	}
	s.rooms[id] = room
	return room
}

func (s *RoomStore) newGameCodeLocked() string {
	for {
		code := newGameCode()
		taken := false
		for _, room := range s.rooms {
			if room.GameCode == code {
				taken = true
				break
			}
		}
		if !taken {
			return code
		}
	}
}

func (s *RoomStore) GetRoom(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	return room, ok
}

func (s *RoomStore) UpdateRoom(id string, update func(room *Room) error) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, errRoomNotFound
	}
	if err := update(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomStore) FindByGameCode(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.GameCode == code {
			return room, true
		}
	}
	return nil, false
}

func (s *RoomStore) RemoveRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *RoomStore) ListRoomSummaries() []RoomSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]RoomSummary, 0, len(s.rooms))
	for _, room := range s.rooms {
		list = append(list, RoomSummary{
			ID:      room.ID,
			Players: len(room.Players),
			State:   room.State,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return roomSortKey(list[i].ID) < roomSortKey(list[j].ID)
	})
	return list
}

func roomSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}
