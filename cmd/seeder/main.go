package main

import (
	"context"
	"flag"
	"log"

	"github.com/cppla/community/config"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

func main() {
	var numUsers, numPosts, numComments int
	flag.IntVar(&numUsers, "users", 10, "number of users to create")
	flag.IntVar(&numPosts, "posts", 50, "number of posts to create")
	flag.IntVar(&numComments, "comments", 3, "max comments per post")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.InitDatabase(cfg, models.All()...)
	if err != nil {
		utils.Sugar.Fatalf("init database: %v", err)
	}
	defer func() { _ = config.CloseDatabase(db) }()

	repos := repository.NewRepositories(db)
	if err := Seed(context.Background(), repos, numUsers, numPosts, numComments); err != nil {
		utils.Sugar.Fatalf("seed: %v", err)
	}
}
