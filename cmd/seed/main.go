package main

import (
	"context"
	"fmt"
	"os"

	"kamstim/internal/entity"
	"kamstim/internal/model"
	"kamstim/pkg/cache"
	"kamstim/pkg/config"
	"kamstim/pkg/database"
	"kamstim/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (counters will not be warmed)", err)
		redisClient = nil
	}

	if _, err := os.Stat(cfg.ContainersFile); err != nil {
		log.Error("Container dataset %s is missing: %v", cfg.ContainersFile, err)
	}

	// Convenience for local development; production schemas go through goose.
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.PostModel{},
		&model.ReplyModel{},
		&model.ReactionModel{},
	); err != nil {
		log.Error("Failed to auto-migrate schema: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, redisClient, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, redisClient *redis.Client, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		name     string
		password string
	}{
		{"alena@test.cz", "Alena", "password123"},
		{"bohumil@test.cz", "Bohumil", "password123"},
		{"cyril@test.cz", "Cyril", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:    userData.email,
			Name:     userData.name,
			Password: string(hashedPassword),
		}

		var existingUser model.UserModel
		result := db.Where("email = ?", user.Email).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Email)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Email, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Name, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return fmt.Errorf("no users available for seeding posts")
	}

	demoPosts := []struct {
		title   string
		content string
	}{
		{
			"Kam s vybitými bateriemi?",
			"Baterie nepatří do směsného odpadu. Červené boxy na baterie najdete ve většině supermarketů a na sběrných dvorech.",
		},
		{
			"Bioodpad v zimě",
			"Hnědé popelnice na bioodpad se v Brně vyváží i přes zimu, jen v delších intervalech. Slupky a zbytky rostlin tam patří pořád.",
		},
		{
			"Nová stanoviště na elektroodpad",
			"Na Vinohradech přibyla dvě nová stanoviště s kontejnery na drobný elektroodpad. Velké spotřebiče stále patří na sběrný dvůr.",
		},
	}

	postIDs := make([]string, 0, len(demoPosts))
	for i, p := range demoPosts {
		authorID := userIDs[i%len(userIDs)]

		var existing model.PostModel
		result := db.Where("title = ?", p.title).First(&existing)
		if result.Error == nil {
			log.Info("Post %q already exists, skipping", p.title)
			postIDs = append(postIDs, existing.ID)
			continue
		}

		post := &model.PostModel{
			Title:     p.title,
			Content:   p.content,
			Published: true,
			AuthorID:  authorID,
		}
		if err := db.Create(post).Error; err != nil {
			log.Error("Failed to create post %q: %v", p.title, err)
			continue
		}
		log.Info("Created post: %s", post.Title)
		postIDs = append(postIDs, post.ID)
	}

	reactionTypes := []entity.ReactionType{entity.ReactionLike, entity.ReactionLove, entity.ReactionWow}
	for _, postID := range postIDs {
		for i, userID := range userIDs {
			var existing model.ReactionModel
			result := db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing)
			if result.Error == nil {
				continue
			}

			reaction := &model.ReactionModel{
				Type:   string(reactionTypes[i%len(reactionTypes)]),
				UserID: userID,
				PostID: postID,
			}
			if err := db.Create(reaction).Error; err != nil {
				log.Error("Failed to create reaction: %v", err)
				continue
			}
		}

		reply := &model.ReplyModel{
			Content:  "Díky za tip, hodilo se!",
			AuthorID: userIDs[0],
			PostID:   postID,
		}
		var existingReply model.ReplyModel
		if db.Where("post_id = ? AND author_id = ?", postID, userIDs[0]).First(&existingReply).Error != nil {
			if err := db.Create(reply).Error; err != nil {
				log.Error("Failed to create reply: %v", err)
			}
		}
	}

	if redisClient != nil {
		ctx := context.Background()
		for _, postID := range postIDs {
			var count int64
			if err := db.Model(&model.ReactionModel{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
				continue
			}
			key := fmt.Sprintf("post:reactions:%s", postID)
			if err := redisClient.Set(ctx, key, count, 0).Err(); err != nil {
				log.Error("Failed to warm reaction counter for post %s: %v", postID, err)
			}
		}
		log.Info("Warmed reaction counters in Redis")
	}

	return nil
}
