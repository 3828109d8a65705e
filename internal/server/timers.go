package server

import (
	"log"
	"time"
)

// scheduleGraceTimer arms the removal timer for a disconnected player.
// Must run inside an UpdateRoom closure.
func (s *Server) scheduleGraceTimer(roomID string, player *Player) {
	if player.graceTimer != nil {
		player.graceTimer.Stop()
	}
	playerID := player.ID
	player.graceTimer = time.AfterFunc(s.gracePeriod(), func() {
		s.expireGracePeriod(roomID, playerID)
	})
}

func (s *Server) gracePeriod() time.Duration {
	return time.Duration(s.cfg.GracePeriodSeconds) * time.Second
}

// expireGracePeriod removes a player whose grace window elapsed while still
// disconnected. The connected flag is re-checked under the lock: a
// reconnect that raced the timer wins. Removing the last player removes
// the room.
func (s *Server) expireGracePeriod(roomID, playerID string) {
	var sends []delivery
	removed := false
	roomEmpty := false
	_, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		player, ok := room.Players[playerID]
		if !ok || player.Connected {
			return nil
		}
		delete(room.Players, playerID)
		removed = true
		roomEmpty = len(room.Players) == 0
		sends = broadcastRoom(room, playerLeftMessage{
			Type:     msgPlayerLeft,
			PlayerID: playerID,
		})
		return nil
	})
	if err != nil {
		return
	}
	if !removed {
		return
	}
	deliver(sends)
	log.Printf("player removed after grace period room_id=%s player_id=%s", roomID, playerID)
	if roomEmpty {
		s.store.RemoveRoom(roomID)
		log.Printf("room removed room_id=%s reason=empty", roomID)
	}
}
