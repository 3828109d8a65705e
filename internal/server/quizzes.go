package server

import (
	"sort"
	"sync"
)

// QuizStore is the keyed quiz collection a room selects from. Get reports
// a missing id through the bool, not an error; errors are reserved for
// backend failures.
type QuizStore interface {
	List() ([]Quiz, error)
	Get(id uint) (Quiz, bool, error)
	Create(name string, songs []Song) (Quiz, error)
	Update(id uint, name string, songs []Song) (Quiz, bool, error)
	Delete(id uint) (bool, error)
}

type memoryQuizStore struct {
	mu      sync.Mutex
	nextID  uint
	quizzes map[uint]Quiz
}

// NewMemoryQuizStore returns an in-memory quiz store pre-seeded with the
// stock quizzes. Used when no database is configured, and throughout tests.
func NewMemoryQuizStore() QuizStore {
	store := &memoryQuizStore{
		nextID:  1,
		quizzes: make(map[uint]Quiz),
	}
	for _, quiz := range StockQuizzes() {
		quiz.ID = store.nextID
		quiz.Songs = normalizeSongs(quiz.Songs)
		store.quizzes[quiz.ID] = quiz
		store.nextID++
	}
	return store
}

// normalizeSongs stamps each song's id with its position.
func normalizeSongs(songs []Song) []Song {
	normalized := make([]Song, len(songs))
	copy(normalized, songs)
	for i := range normalized {
		normalized[i].ID = i
	}
	return normalized
}

func (s *memoryQuizStore) List() ([]Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]Quiz, 0, len(s.quizzes))
	for _, quiz := range s.quizzes {
		list = append(list, quiz)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *memoryQuizStore) Get(id uint) (Quiz, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz, ok := s.quizzes[id]
	return quiz, ok, nil
}

func (s *memoryQuizStore) Create(name string, songs []Song) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz := Quiz{
		ID:    s.nextID,
		Name:  name,
		Songs: normalizeSongs(songs),
	}
	s.quizzes[quiz.ID] = quiz
	s.nextID++
	return quiz, nil
}

func (s *memoryQuizStore) Update(id uint, name string, songs []Song) (Quiz, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[id]; !ok {
		return Quiz{}, false, nil
	}
	quiz := Quiz{
		ID:    id,
		Name:  name,
		Songs: normalizeSongs(songs),
	}
	s.quizzes[id] = quiz
	return quiz, true, nil
}

func (s *memoryQuizStore) Delete(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[id]; !ok {
		return false, nil
	}
	delete(s.quizzes, id)
	return true, nil
}
