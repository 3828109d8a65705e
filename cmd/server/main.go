package main

import (
	"log"
	"net/http"
	"os"

	"songquiz/internal/config"
	"songquiz/internal/db"
	"songquiz/internal/server"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	var conn *gorm.DB
	if os.Getenv("DATABASE_URL") != "" {
		var err error
		conn, err = db.Open()
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := db.Configure(conn, cfg); err != nil {
			log.Fatalf("database pool setup failed: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set, serving quizzes from memory")
	}

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(conn, cfg)
	log.Printf("songquiz server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
