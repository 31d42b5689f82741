package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/config"
	"github.com/Gicotto/MyTaskApp/internal/auth"
	"github.com/Gicotto/MyTaskApp/internal/handlers"
	"github.com/Gicotto/MyTaskApp/internal/repository"
	"github.com/Gicotto/MyTaskApp/internal/routes"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	db, err := config.OpenDB(cfg)
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	rdb := config.OpenRedis(cfg)

	authService := auth.NewService(
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
		[]byte(cfg.JWTSecret),
		cfg.SessionTTL,
		rdb,
	)

	h := handlers.New(
		repository.NewTaskRepository(db),
		repository.NewFinancialRepository(db),
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
		authService,
		logger,
	)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	routes.SetupRoutes(r, h, authService)

	slog.Info("Запуск сервера", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		slog.Error("Сервер завершился с ошибкой", "error", err)
		os.Exit(1)
	}
}
