package seed

import (
	"fmt"
	"log"
	"os"

	"newsroom/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Options controls how much demo data the seeder generates.
type Options struct {
	Posts           int  `yaml:"posts"`
	CommentsPerPost int  `yaml:"comments_per_post"`
	MaxDays         int  `yaml:"max_days"`
	Clean           bool `yaml:"clean"`
}

// DefaultOptions is the flag fallback when no profile file is given.
var DefaultOptions = Options{
	Posts:           40,
	CommentsPerPost: 6,
	MaxDays:         90,
	Clean:           true,
}

// LoadProfile reads seeder options from a yaml profile file.
func LoadProfile(path string) (Options, error) {
	opts := DefaultOptions
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read seed profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse seed profile: %w", err)
	}
	return opts, nil
}

// Run populates the database with demo posts and comments.
func Run(db *gorm.DB, opts Options) error {
	if opts.Clean {
		if err := db.Where("1 = 1").Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("clean comments: %w", err)
		}
		if err := db.Where("1 = 1").Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("clean posts: %w", err)
		}
	}

	f := NewFactory(db, opts)
	for i := 0; i < opts.Posts; i++ {
		post, err := f.CreatePost()
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		n := f.rand.Intn(opts.CommentsPerPost + 1)
		for j := 0; j < n; j++ {
			if _, err := f.CreateComment(post.ID); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	log.Printf("Seeded %d posts", opts.Posts)
	return nil
}
