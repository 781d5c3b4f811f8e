package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/api"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/auth"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/cache"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/security"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/storage"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("load config:", err)
	}

	var store storage.RunStore
	if cfg.Database.URL != "" {
		pg, err := storage.NewPostgresStore(cfg.Database.URL)
		if err != nil {
			log.Fatalln("connect database:", err)
		}
		defer pg.Close()
		store = pg
	} else {
		store = storage.NewRunRegistry()
	}

	resultCache := cache.New(cfg.Redis.Addr, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	provider := auth.NewLocalProvider(cfg.Auth.JWTSecret)
	authHandlers := auth.NewHandlers(provider)
	authMiddleware := auth.NewMiddleware(provider)
	sec := security.NewMiddleware(security.Config{RequestsPerSecond: 20, BurstSize: 40})

	handlers := api.NewHandlers(store, resultCache, cfg.Scheduler.DefaultTimeQuantum)

	r := gin.Default()
	api.SetupRoutes(r, handlers, authHandlers, authMiddleware, sec)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("CPU scheduling simulator listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalln("failed to start server:", err)
	}
}
