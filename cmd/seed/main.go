// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fixture := flag.String("fixture", "", "Seed from a YAML fixture file instead of generating data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *fixture != "" {
		f, err := seed.LoadFixture(*fixture)
		if err != nil {
			log.Fatalf("Fixture load failed: %v", err)
		}
		if err := s.ApplyFixture(f); err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
		log.Println("Fixture applied")
		return
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	posts, err := s.SeedPosts(users, *numPosts)
	if err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}
	if _, err := s.SeedComments(users, posts); err != nil {
		log.Fatalf("Comment seeding failed: %v", err)
	}

	log.Println("Done. All generated users have the password: password123")
}
