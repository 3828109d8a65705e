package server

// The room engine drops certain inputs without telling the sender: role
// violations and repeated guesses in a round. Not a security boundary; the
// game runs among a trusted small group.

// dropNonHostAction reports whether a host-only message should be ignored.
func dropNonHostAction(c *client) bool {
	return c.roomID == "" || !c.isHost
}

// dropHostGuess reports whether a guess should be ignored because it came
// from the host.
func dropHostGuess(c *client) bool {
	return c.roomID == "" || c.isHost
}

// dropRepeatGuess reports whether the player already guessed this round.
func dropRepeatGuess(room *Room, playerID string) bool {
	_, guessed := room.Guesses[playerID]
	return guessed
}
