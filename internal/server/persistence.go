package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"songquiz/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// dbQuizStore is the Postgres-backed QuizStore. Songs live in a jsonb
// column on the quiz row.
type dbQuizStore struct {
	conn *gorm.DB
}

func NewDBQuizStore(conn *gorm.DB) QuizStore {
	return &dbQuizStore{conn: conn}
}

func (s *dbQuizStore) List() ([]Quiz, error) {
	var records []db.Quiz
	if err := s.conn.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	quizzes := make([]Quiz, 0, len(records))
	for _, record := range records {
		quiz, err := quizFromRecord(record)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

func (s *dbQuizStore) Get(id uint) (Quiz, bool, error) {
	var record db.Quiz
	if err := s.conn.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quiz{}, false, nil
		}
		return Quiz{}, false, fmt.Errorf("get quiz %d: %w", id, err)
	}
	quiz, err := quizFromRecord(record)
	if err != nil {
		return Quiz{}, false, err
	}
	return quiz, true, nil
}

func (s *dbQuizStore) Create(name string, songs []Song) (Quiz, error) {
	payload, err := songsToJSON(normalizeSongs(songs))
	if err != nil {
		return Quiz{}, err
	}
	record := db.Quiz{
		Name:  name,
		Songs: payload,
	}
	if err := s.conn.Create(&record).Error; err != nil {
		return Quiz{}, fmt.Errorf("create quiz: %w", err)
	}
	return quizFromRecord(record)
}

func (s *dbQuizStore) Update(id uint, name string, songs []Song) (Quiz, bool, error) {
	var record db.Quiz
	if err := s.conn.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quiz{}, false, nil
		}
		return Quiz{}, false, fmt.Errorf("update quiz %d: %w", id, err)
	}
	payload, err := songsToJSON(normalizeSongs(songs))
	if err != nil {
		return Quiz{}, false, err
	}
	record.Name = name
	record.Songs = payload
	if err := s.conn.Save(&record).Error; err != nil {
		return Quiz{}, false, fmt.Errorf("update quiz %d: %w", id, err)
	}
	quiz, err := quizFromRecord(record)
	if err != nil {
		return Quiz{}, false, err
	}
	return quiz, true, nil
}

func (s *dbQuizStore) Delete(id uint) (bool, error) {
	result := s.conn.Delete(&db.Quiz{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete quiz %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func quizFromRecord(record db.Quiz) (Quiz, error) {
	var songs []Song
	if err := json.Unmarshal(record.Songs, &songs); err != nil {
		return Quiz{}, fmt.Errorf("decode songs for quiz %d: %w", record.ID, err)
	}
	return Quiz{
		ID:    record.ID,
		Name:  record.Name,
		Songs: songs,
	}, nil
}

func songsToJSON(songs []Song) (datatypes.JSON, error) {
	data, err := json.Marshal(songs)
	if err != nil {
		return nil, fmt.Errorf("encode songs: %w", err)
	}
	return datatypes.JSON(data), nil
}
