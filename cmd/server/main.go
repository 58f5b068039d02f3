package main

import (
	"log"
	"net/http"

	"github.com/jacfrist/hr-pg/internal/config"
	"github.com/jacfrist/hr-pg/internal/database"
	"github.com/jacfrist/hr-pg/internal/handlers"
	"github.com/jacfrist/hr-pg/internal/middleware"
	"github.com/jacfrist/hr-pg/internal/services"
	"github.com/jacfrist/hr-pg/internal/ws"

	_ "github.com/jacfrist/hr-pg/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Interview Boss Battle API
// @version         1.0
// @description     Turn-based mock-interview battle: answers are graded and shift boss/player health until one side drops or the question budget runs out
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	llm := services.NewLLMClient(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMModel)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	questionService := services.NewQuestionService(llm)
	grader := services.NewAIGrader(llm)
	battleService := services.NewBattleService(db, questionService, grader)
	historyService := services.NewHistoryService(db)

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(battleService, llm, hub)
	historyHandler := handlers.NewHistoryHandler(historyService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/game/:id", wsHandler.HandleWebSocket)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/roles", gameHandler.ListRoles)

		game := api.Group("/game")
		game.Use(middleware.OptionalAuth(authService))
		{
			game.GET("/ai-status", gameHandler.AIStatus)
			game.POST("/start", gameHandler.StartGame)
			game.GET("/:id", gameHandler.GetGame)
			game.POST("/:id/question", gameHandler.NextQuestion)
			game.POST("/:id/answer", gameHandler.SubmitAnswer)
		}

		history := api.Group("/history")
		history.Use(middleware.OptionalAuth(authService))
		{
			history.GET("", historyHandler.ListHistory)
			history.GET("/export", historyHandler.ExportHistory)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
