package server

import (
	"log"
	"math"
	"time"
)

// scoreGuess prices a correct guess by speed: full marks at the instant the
// song starts, falling linearly to zero at the end of the guess window.
func scoreGuess(elapsed time.Duration, windowSeconds int) int {
	window := float64(windowSeconds)
	points := int(math.Round(100 * (window - elapsed.Seconds()) / window))
	if points < 0 {
		return 0
	}
	return points
}

// finishRound concludes the current round once every player has guessed.
// Must run inside an UpdateRoom closure with an active song.
func (s *Server) finishRound(room *Room) []delivery {
	correct := *room.CurrentButton
	results := buildRoundResults(room, correct)
	room.UsedButtons = append(room.UsedButtons, correct)

	payload := roundEndedMessage{
		Type:          msgRoundAutoEnded,
		Scores:        buildScores(room),
		Results:       results,
		CorrectAnswer: correct,
		UsedButtons:   usedButtons(room),
	}
	if len(room.UsedButtons) >= len(room.Quiz) {
		room.State = stateEnded
		payload.Type = msgGameEnded
		payload.FinalScoreboard = buildFinalScoreboard(room)
		log.Printf("game ended room_id=%s rounds=%d", room.ID, len(room.UsedButtons))
	} else {
		log.Printf("round ended room_id=%s button=%d used=%d", room.ID, correct, len(room.UsedButtons))
	}
	room.CurrentButton = nil
	return broadcastRoom(room, payload)
}
