// Command main runs the database seeder for the newsroom backend.
package main

import (
	"flag"
	"log"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", seed.DefaultOptions.Posts, "Number of posts to create")
	commentsPerPost := flag.Int("comments", seed.DefaultOptions.CommentsPerPost, "Max comments per post")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	profile := flag.String("profile", "", "Path to a yaml seed profile (overrides other flags)")
	flag.Parse()

	opts := seed.Options{
		Posts:           *numPosts,
		CommentsPerPost: *commentsPerPost,
		MaxDays:         seed.DefaultOptions.MaxDays,
		Clean:           *shouldClean,
	}
	if *profile != "" {
		var err error
		opts, err = seed.LoadProfile(*profile)
		if err != nil {
			log.Fatalf("Failed to load seed profile: %v", err)
		}
		log.Printf("Applying seed profile: %s", *profile)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
