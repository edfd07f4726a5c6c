package main

import (
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cppla/community/config"
	"github.com/cppla/community/models"
	"github.com/cppla/community/routes"
	"github.com/cppla/community/services"
	"github.com/cppla/community/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.InitDatabase(cfg, models.All()...)
	if err != nil {
		utils.Sugar.Fatalf("init database: %v", err)
	}

	utils.InitRedis(cfg)

	kakaoClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	provider := services.NewKakaoProvider(cfg, kakaoClient)

	r := routes.SetupRouter(cfg, db, provider)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	err = utils.GraceServer(":"+cfg.AppPort, r, func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Sugar.Errorf("close database: %v", err)
		}
		if err := utils.CloseRedis(); err != nil {
			utils.Sugar.Errorf("close redis: %v", err)
		}
	})
	if err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
