package server

import "encoding/json"

// Inbound message types.
const (
	msgCreateRoom  = "CREATE_ROOM"
	msgSelectQuiz  = "SELECT_QUIZ"
	msgJoinRoom    = "JOIN_ROOM"
	msgStartQuiz   = "START_QUIZ"
	msgPlaySong    = "PLAY_SONG"
	msgSubmitGuess = "SUBMIT_GUESS"
	msgNextRound   = "NEXT_ROUND"
	msgReconnect   = "RECONNECT"
)

// Outbound message types.
const (
	msgRoomCreated        = "ROOM_CREATED"
	msgJoinRoomSuccess    = "JOIN_ROOM_SUCCESS"
	msgPlayerJoined       = "PLAYER_JOINED"
	msgQuizSelected       = "QUIZ_SELECTED"
	msgQuizStarted        = "QUIZ_STARTED"
	msgSongPlaying        = "SONG_PLAYING"
	msgGuessReceived      = "GUESS_RECEIVED"
	msgScoresUpdate       = "SCORES_UPDATE"
	msgGuessesUpdate      = "GUESSES_UPDATE"
	msgRoundAutoEnded     = "ROUND_AUTO_ENDED"
	msgGameEnded          = "GAME_ENDED"
	msgNextRoundStarted   = "NEXT_ROUND_STARTED"
	msgReconnectSuccess   = "RECONNECT_SUCCESS"
	msgPlayerDisconnected = "PLAYER_DISCONNECTED"
	msgPlayerLeft         = "PLAYER_LEFT"
	msgError              = "ERROR"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectQuizPayload struct {
	QuizID uint `json:"quizId"`
}

type joinRoomPayload struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
}

type playSongPayload struct {
	ButtonIndex int    `json:"buttonIndex"`
	SongURI     string `json:"songUri"`
}

type submitGuessPayload struct {
	Guess int `json:"guess"`
}

type reconnectPayload struct {
	RoomID     string `json:"roomId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type playerInfo struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

type guessEntry struct {
	PlayerID string `json:"playerId"`
	Guess    int    `json:"guess"`
}

// roundResult covers one player's outcome for a round. Guess is nil for
// players who never answered.
type roundResult struct {
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName"`
	Guess         *int   `json:"guess"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	Points        int    `json:"points"`
}

type scoreboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type roomCreatedMessage struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	GameID string `json:"gameId"`
}

type joinRoomSuccessMessage struct {
	Type        string `json:"type"`
	RoomID      string `json:"roomId"`
	GameID      string `json:"gameId"`
	Quiz        []Song `json:"quiz"`
	UsedButtons []int  `json:"usedButtons"`
}

type playerJoinedMessage struct {
	Type    string       `json:"type"`
	Players []playerInfo `json:"players"`
}

type quizSelectedMessage struct {
	Type        string `json:"type"`
	Quiz        []Song `json:"quiz"`
	UsedButtons []int  `json:"usedButtons"`
}

type quizStartedMessage struct {
	Type string `json:"type"`
	Quiz []Song `json:"quiz"`
}

type songPlayingMessage struct {
	Type        string `json:"type"`
	ButtonIndex int    `json:"buttonIndex"`
	SongURI     string `json:"songUri"`
}

type guessReceivedMessage struct {
	Type    string `json:"type"`
	Correct bool   `json:"correct"`
	Points  int    `json:"points"`
}

type scoresUpdateMessage struct {
	Type   string         `json:"type"`
	Scores map[string]int `json:"scores"`
}

type guessesUpdateMessage struct {
	Type    string         `json:"type"`
	Guesses []guessEntry   `json:"guesses"`
	Scores  map[string]int `json:"scores"`
}

// roundEndedMessage carries both ROUND_AUTO_ENDED and GAME_ENDED payloads;
// the final scoreboard is only present on game end.
type roundEndedMessage struct {
	Type            string            `json:"type"`
	Scores          map[string]int    `json:"scores"`
	Results         []roundResult     `json:"results"`
	CorrectAnswer   int               `json:"correctAnswer"`
	UsedButtons     []int             `json:"usedButtons"`
	FinalScoreboard []scoreboardEntry `json:"finalScoreboard,omitempty"`
}

type nextRoundStartedMessage struct {
	Type        string         `json:"type"`
	Scores      map[string]int `json:"scores"`
	NextRound   int            `json:"nextRound"`
	UsedButtons []int          `json:"usedButtons"`
	Quiz        []Song         `json:"quiz"`
}

type reconnectSuccessMessage struct {
	Type        string         `json:"type"`
	RoomID      string         `json:"roomId"`
	GameID      string         `json:"gameId"`
	Quiz        []Song         `json:"quiz"`
	UsedButtons []int          `json:"usedButtons"`
	Scores      map[string]int `json:"scores"`
	GameState   string         `json:"gameState"`
	IsHost      bool           `json:"isHost"`
}

type playerDisconnectedMessage struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type playerLeftMessage struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
