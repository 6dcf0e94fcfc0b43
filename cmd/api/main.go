package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rahmasleam/Neux-Mena-V5/internal/auth"
	"github.com/rahmasleam/Neux-Mena-V5/internal/config"
	"github.com/rahmasleam/Neux-Mena-V5/internal/handler"
	"github.com/rahmasleam/Neux-Mena-V5/internal/pipeline"
	"github.com/rahmasleam/Neux-Mena-V5/internal/repository"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var fallback repository.FallbackStore
	fileStore, err := repository.NewFileFallbackStore()
	if err != nil {
		slog.Warn("local fallback file unavailable, sessions will not survive restarts", "error", err)
		fallback = &repository.MemoryFallbackStore{}
	} else {
		fallback = fileStore
	}

	store := repository.New(cfg.Auth.AdminEmail, fallback)
	store.ResolveSession(nil)

	gateway := llm.NewGateway(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.TTSModel, cfg.AI.Voice)
	if !gateway.Available() {
		slog.Warn("no Gemini API key configured, AI features run degraded")
	}

	authService := auth.NewService(auth.UnavailableProvider{}, store, cfg.Auth.DemoAccounts)
	refresher := pipeline.NewRefresher(store, gateway, gateway, cfg.Refresh)

	contentHandler := handler.NewContentHandler(store)
	refreshHandler := handler.NewRefreshHandler(refresher)
	aiHandler := handler.NewAIHandler(gateway)
	authHandler := handler.NewAuthHandler(authService, store)
	userHandler := handler.NewUserHandler(store)
	adminHandler := handler.NewAdminHandler(store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/news", contentHandler.GetNews)
	r.GET("/startups", contentHandler.GetStartups)
	r.GET("/events", contentHandler.GetEvents)
	r.GET("/podcasts", contentHandler.GetPodcasts)
	r.GET("/newsletters", contentHandler.GetNewsletters)
	r.GET("/market", contentHandler.GetMarket)
	r.GET("/partners", contentHandler.GetPartners)
	r.GET("/resources", contentHandler.GetResources)
	r.GET("/industry", contentHandler.GetIndustry)
	r.GET("/trends", contentHandler.GetTrends)
	r.GET("/items/:id", contentHandler.GetItem)
	r.GET("/health", handler.Health(gateway.Available()))

	r.POST("/refresh/:category", refreshHandler.Refresh)

	r.POST("/ai/summarize", aiHandler.Summarize)
	r.POST("/ai/translate", aiHandler.Translate)
	r.POST("/ai/market-analysis", aiHandler.AnalyzeMarket)
	r.POST("/ai/article-content", aiHandler.ArticleContent)
	r.POST("/ai/podcast-analysis", aiHandler.AnalyzePodcast)
	r.POST("/ai/review", aiHandler.Review)
	r.POST("/ai/fetch-latest", aiHandler.FetchLatest)
	r.POST("/ai/chat", aiHandler.Chat)
	r.POST("/ai/speak", aiHandler.Speak)

	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/reset-password", authHandler.ResetPassword)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/auth/session", authHandler.GetSession)

	r.POST("/favorites/:id", userHandler.ToggleFavorite)
	r.GET("/favorites", userHandler.GetFavorites)
	r.POST("/chats", userHandler.SaveChat)
	r.GET("/chats", userHandler.GetChats)
	r.POST("/analyses", userHandler.SaveAnalysis)
	r.DELETE("/analyses/:id", userHandler.DeleteAnalysis)
	r.GET("/analyses", userHandler.GetAnalyses)

	admin := r.Group("/admin", handler.RequireAdmin(store))
	admin.POST("/:category", adminHandler.Create)
	admin.PUT("/:category", adminHandler.Update)
	admin.DELETE("/:category/:id", adminHandler.Delete)

	err = r.Run(cfg.Server.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
