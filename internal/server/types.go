package server

import "time"

const (
	stateWaiting = "waiting"
	statePlaying = "playing"
	stateEnded   = "ended"
)

// Song is one entry on a quiz's button board. ID doubles as the song's
// button index inside its quiz. Dummy songs are decoys that widen the guess
// space and are never played.
type Song struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	ButtonText string `json:"buttonText"`
	SongURI    string `json:"songUri"`
	IsDummy    bool   `json:"isDummy,omitempty"`
}

type Quiz struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

// Player is a non-host participant. conn is nil while disconnected; seq
// preserves join order for rosters and tie-breaking.
type Player struct {
	ID         string
	Name       string
	Score      int
	Connected  bool
	conn       *client
	seq        int
	graceTimer *time.Timer
}

// Host is the room's controlling identity. It never appears in rosters or
// scores but can reconnect like any player.
type Host struct {
	ID        string
	Connected bool
	conn      *client
}

// guessRecord is a player's answer for the current round. Points are fixed
// at submission time so a later clock change cannot reprice the guess.
type guessRecord struct {
	Button int
	Points int
}

type Room struct {
	ID             string
	GameCode       string
	State          string
	Host           Host
	Players        map[string]*Player
	QuizID         uint
	Quiz           []Song
	CurrentRound   int
	CurrentButton  *int
	Guesses        map[string]guessRecord
	UsedButtons    []int
	RoundStartedAt time.Time
	playerSeq      int
}

type RoomSummary struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
	State   string `json:"state"`
}
