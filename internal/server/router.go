package server

import (
	"encoding/json"
	"log"
)

// handleMessage decodes one inbound frame and dispatches it. Malformed
// envelopes and payloads are logged and dropped without a reply; the
// connection stays up.
func (s *Server) handleMessage(c *client, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("ws message unparsable conn_id=%s error=%v", c.id, err)
		return
	}

	switch msg.Type {
	case msgCreateRoom:
		s.handleCreateRoom(c)
	case msgSelectQuiz:
		var p selectQuizPayload
		if !decodePayload(c, msg, &p) {
			return
		}
		s.handleSelectQuiz(c, p)
	case msgJoinRoom:
		var p joinRoomPayload
		if !decodePayload(c, msg, &p) {
			return
		}
		s.handleJoinRoom(c, p)
	case msgStartQuiz:
		s.handleStartQuiz(c)
	case msgPlaySong:
		var p playSongPayload
		if !decodePayload(c, msg, &p) {
			return
		}
		s.playSong(c, p, timeNowUTC())
	case msgSubmitGuess:
		var p submitGuessPayload
		if !decodePayload(c, msg, &p) {
			return
		}
		s.submitGuess(c, p, timeNowUTC())
	case msgNextRound:
		s.handleNextRound(c)
	case msgReconnect:
		var p reconnectPayload
		if !decodePayload(c, msg, &p) {
			return
		}
		s.handleReconnect(c, p)
	default:
		log.Printf("ws message unknown conn_id=%s type=%s", c.id, msg.Type)
	}
}

func decodePayload(c *client, msg inboundMessage, dest any) bool {
	if len(msg.Payload) == 0 {
		log.Printf("ws payload missing conn_id=%s type=%s", c.id, msg.Type)
		return false
	}
	if err := json.Unmarshal(msg.Payload, dest); err != nil {
		log.Printf("ws payload unparsable conn_id=%s type=%s error=%v", c.id, msg.Type, err)
		return false
	}
	return true
}
