package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// Seed fills the store with fake users, posts, comments, images and likes.
func Seed(ctx context.Context, repos *repository.Repositories, numUsers, numPosts, maxComments int) error {
	if numUsers < 1 {
		return fmt.Errorf("need at least one user, got %d", numUsers)
	}
	utils.Logger.Info("seeding", zap.Int("users", numUsers), zap.Int("posts", numPosts))

	categories, err := repos.Category.EnsureDefaults(ctx)
	if err != nil {
		return fmt.Errorf("ensure categories: %w", err)
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		avatar := gofakeit.ImageURL(100, 100)
		u := models.NewSocialUser(gofakeit.DigitN(10), gofakeit.Username(), &avatar)
		if err := repos.User.Create(ctx, u); err != nil {
			utils.Logger.Warn("skip user", zap.String("social_id", u.SocialID), zap.Error(err))
			continue
		}
		users = append(users, u)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users created")
	}

	for i := 0; i < numPosts; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		post := &models.Post{
			Title:      gofakeit.Sentence(gofakeit.Number(3, 8)),
			Content:    gofakeit.Paragraph(2, 4, 15, "\n\n"),
			UserID:     author.ID,
			CategoryID: categories[gofakeit.Number(0, len(categories)-1)].ID,
		}
		if err := repos.Post.Create(ctx, post); err != nil {
			return fmt.Errorf("create post %d/%d: %w", i+1, numPosts, err)
		}

		if gofakeit.Bool() {
			url := gofakeit.ImageURL(640, 480)
			name := gofakeit.Word() + ".jpg"
			if err := repos.PostImage.Create(ctx, &models.PostImage{PostID: post.ID, ImageURL: &url, OriginalFilename: &name}); err != nil {
				return fmt.Errorf("create image: %w", err)
			}
		}

		for j := gofakeit.Number(0, maxComments); j > 0; j-- {
			c := &models.Comment{
				PostID:  post.ID,
				UserID:  users[gofakeit.Number(0, len(users)-1)].ID,
				Content: gofakeit.Sentence(gofakeit.Number(4, 12)),
			}
			if err := repos.Comment.Create(ctx, c); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}

		for _, u := range users {
			if gofakeit.Number(0, 3) == 0 {
				if _, err := repos.Like.Toggle(ctx, u.ID, post.ID); err != nil {
					return fmt.Errorf("like post: %w", err)
				}
			}
		}
	}

	utils.Logger.Info("seeding done", zap.Int("users", len(users)), zap.Int("posts", numPosts))
	return nil
}
