package server

import (
	"net/http"

	"songquiz/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store    *RoomStore
	quizzes  QuizStore
	registry *registry
	cfg      config.Config
}

// New builds a Server. Passing a nil connection keeps quizzes in memory,
// seeded with the stock catalog.
func New(conn *gorm.DB, cfg config.Config) *Server {
	var quizzes QuizStore
	if conn == nil {
		quizzes = NewMemoryQuizStore()
	} else {
		quizzes = NewDBQuizStore(conn)
	}
	return &Server{
		store:    NewRoomStore(),
		quizzes:  quizzes,
		registry: newRegistry(),
		cfg:      cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /rooms", s.handleListRooms)
	mux.HandleFunc("GET /api/quizzes", s.handleListQuizzes)
	mux.HandleFunc("POST /api/quizzes", s.handleCreateQuiz)
	mux.HandleFunc("GET /api/quizzes/", s.handleQuizSubroutes)
	mux.HandleFunc("PUT /api/quizzes/", s.handleQuizSubroutes)
	mux.HandleFunc("DELETE /api/quizzes/", s.handleQuizSubroutes)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	return mux
}
