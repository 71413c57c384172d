package main

import (
	"fmt"
	"log"
	"time"

	"epochrank/client"
	"epochrank/config"
	"epochrank/controller"
	"epochrank/docs"
	"epochrank/migrations"
	"epochrank/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Epoch Rank API
// @version         1.0
// @description     Guild ranking and reward delivery tracker.
func main() {
	t := time.Now()

	cfg := config.Env()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := migrations.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	var notifier service.ThresholdNotifier
	if cfg.DiscordBotToken != "" && cfg.DiscordChannelId != "" {
		discordNotifier, err := client.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordChannelId)
		if err != nil {
			log.Printf("Discord notifications disabled: %v", err)
		} else {
			notifier = discordNotifier
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fmt.Println("Failed to set trusted proxies:", err)
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, db, cacheStore, notifier)
	fmt.Println("Server started in", time.Since(t))
	err = r.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println("Failed to start server:", err)
	}
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	// the cookie-based session needs credentialed CORS, so origins are explicit
	corsConfig := cors.Config{
		AllowOrigins: []string{
			"http://localhost",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))
}
