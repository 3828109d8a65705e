package server

import (
	"log"
	"net/http"
)

const songsPerQuiz = 8

type quizRequest struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

func validQuizRequest(req quizRequest) bool {
	return req.Name != "" && len(req.Songs) == songsPerQuiz
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"connections": s.registry.Count(),
	})
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListRoomSummaries())
}

func (s *Server) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := s.quizzes.List()
	if err != nil {
		log.Printf("list quizzes failed error=%v", err)
		writeError(w, http.StatusInternalServerError, "failed to list quizzes")
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request, id uint) {
	quiz, found, err := s.quizzes.Get(id)
	if err != nil {
		log.Printf("get quiz failed quiz_id=%d error=%v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load quiz")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Quiz not found")
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (s *Server) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validQuizRequest(req) {
		writeError(w, http.StatusBadRequest, "Quiz must have a name and exactly 8 songs")
		return
	}
	quiz, err := s.quizzes.Create(req.Name, req.Songs)
	if err != nil {
		log.Printf("create quiz failed error=%v", err)
		writeError(w, http.StatusInternalServerError, "failed to create quiz")
		return
	}
	log.Printf("quiz created quiz_id=%d name=%q", quiz.ID, quiz.Name)
	writeJSON(w, http.StatusCreated, quiz)
}

func (s *Server) handleUpdateQuiz(w http.ResponseWriter, r *http.Request, id uint) {
	var req quizRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validQuizRequest(req) {
		writeError(w, http.StatusBadRequest, "Quiz must have a name and exactly 8 songs")
		return
	}
	quiz, found, err := s.quizzes.Update(id, req.Name, req.Songs)
	if err != nil {
		log.Printf("update quiz failed quiz_id=%d error=%v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to update quiz")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Quiz not found")
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (s *Server) handleDeleteQuiz(w http.ResponseWriter, r *http.Request, id uint) {
	found, err := s.quizzes.Delete(id)
	if err != nil {
		log.Printf("delete quiz failed quiz_id=%d error=%v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete quiz")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Quiz not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleQuizSubroutes(w http.ResponseWriter, r *http.Request) {
	id, ok := parseQuizPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.handleGetQuiz(w, r, id)
	case http.MethodPut:
		s.handleUpdateQuiz(w, r, id)
	case http.MethodDelete:
		s.handleDeleteQuiz(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
