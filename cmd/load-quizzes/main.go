package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"songquiz/internal/config"
	"songquiz/internal/db"
	"songquiz/internal/server"

	"gorm.io/datatypes"
)

// Seeds the quizzes table. Reads quizzes from -file when given, otherwise
// loads the stock catalog. Existing quizzes with the same name are kept.
func main() {
	file := flag.String("file", "", "path to a JSON file of quizzes")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	quizzes := server.StockQuizzes()
	if *file != "" {
		quizzes, err = readQuizzes(*file)
		if err != nil {
			log.Fatalf("read quizzes from %s: %v", *file, err)
		}
	}

	for _, quiz := range quizzes {
		songs, err := json.Marshal(quiz.Songs)
		if err != nil {
			log.Fatalf("encode songs for %q: %v", quiz.Name, err)
		}
		record := db.Quiz{Name: quiz.Name, Songs: datatypes.JSON(songs)}
		result := conn.Where(db.Quiz{Name: quiz.Name}).FirstOrCreate(&record)
		if result.Error != nil {
			log.Fatalf("load quiz %q: %v", quiz.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("quiz loaded quiz_id=%d name=%q", record.ID, record.Name)
		} else {
			log.Printf("quiz exists quiz_id=%d name=%q", record.ID, record.Name)
		}
	}
}

func readQuizzes(path string) ([]server.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var quizzes []server.Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}
