package main

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/community/config"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
)

func TestSeed(t *testing.T) {
	gofakeit.Seed(42)
	db, err := config.InitDatabase(config.AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		LogLevel:       "silent",
	}, models.All()...)
	require.NoError(t, err)
	defer func() { _ = config.CloseDatabase(db) }()

	repos := repository.NewRepositories(db)
	require.NoError(t, Seed(context.Background(), repos, 3, 5, 2))

	posts, err := repos.Post.List(context.Background(), repository.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, posts, 5)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)
}

func TestSeedNeedsUsers(t *testing.T) {
	assert.Error(t, Seed(context.Background(), nil, 0, 1, 0))
}
