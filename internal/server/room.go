package server

import (
	"errors"
	"log"
	"time"
)

var errPlayerNotFound = errors.New("player not found")

func (s *Server) handleCreateRoom(c *client) {
	room := s.store.CreateRoom(c)
	c.roomID = room.ID
	c.playerID = c.id
	c.isHost = true
	c.send(roomCreatedMessage{
		Type:   msgRoomCreated,
		RoomID: room.ID,
		GameID: room.GameCode,
	})
	log.Printf("room created room_id=%s game_code=%s", room.ID, room.GameCode)
}

func (s *Server) handleJoinRoom(c *client, p joinRoomPayload) {
	target, ok := s.store.FindByGameCode(p.GameID)
	if !ok {
		c.send(errorMessage{Type: msgError, Message: "Game not found"})
		return
	}

	var sends []delivery
	room, err := s.store.UpdateRoom(target.ID, func(room *Room) error {
		player := &Player{
			ID:        c.id,
			Name:      p.PlayerName,
			Connected: true,
			conn:      c,
			seq:       room.playerSeq,
		}
		room.playerSeq++
		room.Players[player.ID] = player
		sends = broadcastRoom(room, playerJoinedMessage{
			Type:    msgPlayerJoined,
			Players: buildRoster(room),
		})
		sends = append(sends, delivery{c, joinRoomSuccessMessage{
			Type:        msgJoinRoomSuccess,
			RoomID:      room.ID,
			GameID:      room.GameCode,
			Quiz:        quizSongs(room),
			UsedButtons: usedButtons(room),
		}})
		return nil
	})
	if err != nil {
		c.send(errorMessage{Type: msgError, Message: "Game not found"})
		return
	}
	c.roomID = room.ID
	c.playerID = c.id
	c.isHost = false
	deliver(sends)
	log.Printf("player joined room_id=%s game_code=%s player_id=%s name=%q", room.ID, room.GameCode, c.id, p.PlayerName)
}

func (s *Server) handleSelectQuiz(c *client, p selectQuizPayload) {
	if dropNonHostAction(c) {
		return
	}

	// A missing quiz id yields an empty song list, propagated as-is.
	songs := []Song{}
	quiz, found, err := s.quizzes.Get(p.QuizID)
	if err != nil {
		log.Printf("quiz lookup failed quiz_id=%d error=%v", p.QuizID, err)
	} else if found {
		songs = quiz.Songs
	}

	var sends []delivery
	_, err = s.store.UpdateRoom(c.roomID, func(room *Room) error {
		// Used buttons survive reselection; a mid-game quiz swap never
		// reopens already-played rounds.
		room.QuizID = p.QuizID
		room.Quiz = songs
		sends = broadcastRoom(room, quizSelectedMessage{
			Type:        msgQuizSelected,
			Quiz:        quizSongs(room),
			UsedButtons: usedButtons(room),
		})
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
	log.Printf("quiz selected room_id=%s quiz_id=%d songs=%d", c.roomID, p.QuizID, len(songs))
}

func (s *Server) handleStartQuiz(c *client) {
	if dropNonHostAction(c) {
		return
	}

	var sends []delivery
	_, err := s.store.UpdateRoom(c.roomID, func(room *Room) error {
		if room.State != stateWaiting {
			return nil
		}
		room.State = statePlaying
		room.CurrentRound = 0
		sends = broadcastRoom(room, quizStartedMessage{
			Type: msgQuizStarted,
			Quiz: quizSongs(room),
		})
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
	if len(sends) > 0 {
		log.Printf("quiz started room_id=%s", c.roomID)
	}
}

func (s *Server) playSong(c *client, p playSongPayload, now time.Time) {
	if dropNonHostAction(c) {
		return
	}

	var sends []delivery
	_, err := s.store.UpdateRoom(c.roomID, func(room *Room) error {
		if p.ButtonIndex < 0 || p.ButtonIndex >= len(room.Quiz) {
			sends = []delivery{{c, errorMessage{Type: msgError, Message: "Button index out of range"}}}
			return nil
		}
		for _, used := range room.UsedButtons {
			if used == p.ButtonIndex {
				sends = []delivery{{c, errorMessage{Type: msgError, Message: "Song already played"}}}
				return nil
			}
		}
		button := p.ButtonIndex
		room.CurrentButton = &button
		room.Guesses = make(map[string]guessRecord)
		room.RoundStartedAt = now
		sends = broadcastRoom(room, songPlayingMessage{
			Type:        msgSongPlaying,
			ButtonIndex: p.ButtonIndex,
			SongURI:     p.SongURI,
		})
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
	log.Printf("song playing room_id=%s button=%d", c.roomID, p.ButtonIndex)
}

func (s *Server) submitGuess(c *client, p submitGuessPayload, now time.Time) {
	if dropHostGuess(c) {
		return
	}

	var sends []delivery
	roomID := c.roomID
	_, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		player, ok := room.Players[c.playerID]
		if !ok {
			return nil
		}
		if dropRepeatGuess(room, c.playerID) {
			return nil
		}

		correct := room.CurrentButton != nil && p.Guess == *room.CurrentButton
		points := 0
		if correct {
			points = scoreGuess(now.Sub(room.RoundStartedAt), s.cfg.GuessWindowSeconds)
			player.Score += points
		}
		room.Guesses[c.playerID] = guessRecord{Button: p.Guess, Points: points}

		sends = append(sends, delivery{c, guessReceivedMessage{
			Type:    msgGuessReceived,
			Correct: correct,
			Points:  points,
		}})
		sends = append(sends, broadcastRoom(room, scoresUpdateMessage{
			Type:   msgScoresUpdate,
			Scores: buildScores(room),
		})...)
		if room.Host.conn != nil {
			sends = append(sends, delivery{room.Host.conn, guessesUpdateMessage{
				Type:    msgGuessesUpdate,
				Guesses: buildGuessEntries(room),
				Scores:  buildScores(room),
			}})
		}
		if room.CurrentButton != nil && allPlayersGuessed(room) {
			sends = append(sends, s.finishRound(room)...)
		}
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
	log.Printf("guess submitted room_id=%s player_id=%s guess=%d", roomID, c.playerID, p.Guess)
}

// allPlayersGuessed reports whether every currently tracked player has a
// guess on record for this round. Guesses left behind by players who were
// removed mid-round do not count toward the quorum.
func allPlayersGuessed(room *Room) bool {
	if len(room.Players) == 0 {
		return false
	}
	for id := range room.Players {
		if _, ok := room.Guesses[id]; !ok {
			return false
		}
	}
	return true
}

func (s *Server) handleNextRound(c *client) {
	if dropNonHostAction(c) {
		return
	}

	var sends []delivery
	_, err := s.store.UpdateRoom(c.roomID, func(room *Room) error {
		if room.State == stateEnded {
			sends = []delivery{{c, errorMessage{Type: msgError, Message: "Game already ended"}}}
			return nil
		}
		room.CurrentRound++
		room.CurrentButton = nil
		room.Guesses = make(map[string]guessRecord)
		sends = broadcastRoom(room, nextRoundStartedMessage{
			Type:        msgNextRoundStarted,
			Scores:      buildScores(room),
			NextRound:   room.CurrentRound,
			UsedButtons: usedButtons(room),
			Quiz:        quizSongs(room),
		})
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
}

func (s *Server) handleReconnect(c *client, p reconnectPayload) {
	var sends []delivery
	var snap reconnectSuccessMessage
	isHost := false
	_, err := s.store.UpdateRoom(p.RoomID, func(room *Room) error {
		if p.PlayerID == room.Host.ID {
			isHost = true
			room.Host.Connected = true
			room.Host.conn = c
		} else {
			player, ok := room.Players[p.PlayerID]
			if !ok {
				return errPlayerNotFound
			}
			if player.graceTimer != nil {
				player.graceTimer.Stop()
				player.graceTimer = nil
			}
			player.Connected = true
			player.conn = c
		}
		snap = reconnectSuccessMessage{
			Type:        msgReconnectSuccess,
			RoomID:      room.ID,
			GameID:      room.GameCode,
			Quiz:        quizSongs(room),
			UsedButtons: usedButtons(room),
			Scores:      buildScores(room),
			GameState:   room.State,
			IsHost:      isHost,
		}
		sends = broadcastRoom(room, playerJoinedMessage{
			Type:    msgPlayerJoined,
			Players: buildRoster(room),
		})
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errPlayerNotFound):
			c.send(errorMessage{Type: msgError, Message: "Player not found in this room"})
		default:
			c.send(errorMessage{Type: msgError, Message: "Room not found"})
		}
		return
	}
	c.roomID = p.RoomID
	c.playerID = p.PlayerID
	c.isHost = isHost
	c.send(snap)
	deliver(sends)
	log.Printf("reconnected room_id=%s player_id=%s is_host=%t", p.RoomID, p.PlayerID, isHost)
}

// handleDisconnect runs when a connection's read loop exits. Hosts are
// waited for indefinitely; regular players get a grace timer.
func (s *Server) handleDisconnect(c *client) {
	if c.roomID == "" {
		return
	}
	var sends []delivery
	_, err := s.store.UpdateRoom(c.roomID, func(room *Room) error {
		if c.isHost && room.Host.conn == c {
			room.Host.Connected = false
			room.Host.conn = nil
			log.Printf("host disconnected room_id=%s waiting indefinitely", room.ID)
			return nil
		}
		player, ok := room.Players[c.playerID]
		if !ok || player.conn != c {
			// A stale connection closing after a reconnect must not mark
			// the replacement as gone.
			return nil
		}
		player.Connected = false
		player.conn = nil
		sends = broadcastRoom(room, playerDisconnectedMessage{
			Type:       msgPlayerDisconnected,
			PlayerID:   player.ID,
			PlayerName: player.Name,
		})
		s.scheduleGraceTimer(room.ID, player)
		log.Printf("player disconnected room_id=%s player_id=%s", room.ID, player.ID)
		return nil
	})
	if err != nil {
		return
	}
	deliver(sends)
}
