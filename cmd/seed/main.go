// Command main seeds the database with realistic development data.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numThreads := flag.Int("threads", 100, "Number of threads to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if *shouldClean {
		if err := clearAll(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := seedUsers(db, *numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	threads, err := seedThreads(db, users, *numThreads)
	if err != nil {
		log.Fatalf("Thread seeding failed: %v", err)
	}
	if err := seedEngagement(db, users, threads); err != nil {
		log.Fatalf("Engagement seeding failed: %v", err)
	}

	log.Printf("Seeded %d users and %d threads. Every account logs in with %q.",
		len(users), len(threads), seedPassword)
}

func clearAll(db *gorm.DB) error {
	for _, m := range []any{&models.Like{}, &models.Reply{}, &models.Follow{}, &models.Thread{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hash),
			FullName: gofakeit.Name(),
			Bio:      gofakeit.Sentence(8),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedThreads(db *gorm.DB, users []models.User, n int) ([]models.Thread, error) {
	threads := make([]models.Thread, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		thread := models.Thread{
			Content:   gofakeit.Sentence(rand.Intn(12) + 3),
			CreatedBy: author.ID,
			UpdatedBy: author.ID,
		}
		if err := db.Create(&thread).Error; err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

// seedEngagement adds replies, likes and follow edges so the feed,
// counters and social lists all have data to show.
func seedEngagement(db *gorm.DB, users []models.User, threads []models.Thread) error {
	for _, thread := range threads {
		for i := 0; i < rand.Intn(4); i++ {
			author := users[rand.Intn(len(users))]
			reply := models.Reply{
				ThreadID:  thread.ID,
				Content:   gofakeit.Sentence(rand.Intn(10) + 2),
				CreatedBy: author.ID,
				UpdatedBy: author.ID,
			}
			if err := db.Create(&reply).Error; err != nil {
				return err
			}
		}

		for i := 0; i < rand.Intn(6); i++ {
			threadID := thread.ID
			like := models.Like{
				UserID:   users[rand.Intn(len(users))].ID,
				ThreadID: &threadID,
			}
			// Duplicate (user, thread) pairs hit the unique index; skip them.
			db.Create(&like)
		}
	}

	for _, follower := range users {
		for i := 0; i < rand.Intn(5); i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			follow := models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			db.Create(&follow)
		}
	}
	return nil
}
