package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/database"
	"tasktracker/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tasktracker.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@tasktracker.local",
		PasswordHash: string(hash),
		Name:         "Demo User",
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("seed user failed:", err)
	}

	log.Println("Creating demo tasks...")
	tasks := []domain.Task{
		{Title: "Buy groceries", Description: "Milk, eggs, bread", Status: domain.StatusTodo, UserID: demo.ID},
		{Title: "Write weekly report", Description: "Summarize sprint progress", Status: domain.StatusInProgress, UserID: demo.ID},
		{Title: "Renew gym membership", Status: domain.StatusDone, UserID: demo.ID},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Fatal("seed task failed:", err)
		}
	}

	log.Printf("Seed completed: 1 user, %d tasks. Login with demo@tasktracker.local / demo123", len(tasks))
}
