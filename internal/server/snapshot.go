package server

import "sort"

// playersInOrder returns players sorted by join order.
func playersInOrder(room *Room) []*Player {
	players := make([]*Player, 0, len(room.Players))
	for _, player := range room.Players {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].seq < players[j].seq
	})
	return players
}

func buildRoster(room *Room) []playerInfo {
	roster := make([]playerInfo, 0, len(room.Players))
	for _, player := range playersInOrder(room) {
		roster = append(roster, playerInfo{
			PlayerID: player.ID,
			Name:     player.Name,
			Score:    player.Score,
		})
	}
	return roster
}

func buildScores(room *Room) map[string]int {
	scores := make(map[string]int, len(room.Players))
	for id, player := range room.Players {
		scores[id] = player.Score
	}
	return scores
}

func buildGuessEntries(room *Room) []guessEntry {
	entries := make([]guessEntry, 0, len(room.Guesses))
	for _, player := range playersInOrder(room) {
		if record, ok := room.Guesses[player.ID]; ok {
			entries = append(entries, guessEntry{
				PlayerID: player.ID,
				Guess:    record.Button,
			})
		}
	}
	return entries
}

// buildRoundResults covers every tracked player, including those who never
// guessed; their guess is reported as absent and scored zero. Points come
// from the record made at guess time, never recomputed.
func buildRoundResults(room *Room, correctButton int) []roundResult {
	results := make([]roundResult, 0, len(room.Players))
	for _, player := range playersInOrder(room) {
		result := roundResult{
			PlayerID:      player.ID,
			PlayerName:    player.Name,
			CorrectAnswer: correctButton,
		}
		if record, ok := room.Guesses[player.ID]; ok {
			button := record.Button
			result.Guess = &button
			result.Correct = button == correctButton
			result.Points = record.Points
		}
		results = append(results, result)
	}
	return results
}

// buildFinalScoreboard sorts by score descending; ties keep join order.
func buildFinalScoreboard(room *Room) []scoreboardEntry {
	board := make([]scoreboardEntry, 0, len(room.Players))
	for _, player := range playersInOrder(room) {
		board = append(board, scoreboardEntry{
			Name:  player.Name,
			Score: player.Score,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Score > board[j].Score
	})
	return board
}

func quizSongs(room *Room) []Song {
	if room.Quiz == nil {
		return []Song{}
	}
	return room.Quiz
}

func usedButtons(room *Room) []int {
	used := make([]int, len(room.UsedButtons))
	copy(used, room.UsedButtons)
	return used
}
