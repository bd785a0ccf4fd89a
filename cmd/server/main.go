package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vedran77/ember/internal/config"
	"github.com/vedran77/ember/internal/database"
	postgresrepo "github.com/vedran77/ember/internal/repository/postgres"
	"github.com/vedran77/ember/internal/service"
	"github.com/vedran77/ember/internal/transport/http/handlers"
	"github.com/vedran77/ember/internal/transport/http/middleware"
	"github.com/vedran77/ember/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	swipeRepo := postgresrepo.NewSwipeRepo(pool)
	matchRepo := postgresrepo.NewMatchRepo(pool)
	friendRepo := postgresrepo.NewFriendshipRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	authService := service.NewAuthService(userRepo, profileRepo, cfg.JWTSecret)
	matchService := service.NewMatchService(swipeRepo, matchRepo, userRepo)
	matchService.SetNotifier(notifier)
	friendService := service.NewFriendshipService(friendRepo, userRepo)
	friendService.SetNotifier(notifier)
	profileService := service.NewProfileService(profileRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	matchHandler := handlers.NewMatchHandler(matchService)
	friendHandler := handlers.NewFriendshipHandler(friendService)
	profileHandler := handlers.NewProfileHandler(profileService)
	userHandler := handlers.NewUserHandler(userRepo)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Protected - Deck & Matches
	mux.Handle("GET /api/v1/deck", auth(http.HandlerFunc(matchHandler.GetDeck)))
	mux.Handle("POST /api/v1/deck/like", auth(http.HandlerFunc(matchHandler.Like)))
	mux.Handle("POST /api/v1/deck/pass", auth(http.HandlerFunc(matchHandler.Pass)))
	mux.Handle("GET /api/v1/matches", auth(http.HandlerFunc(matchHandler.ListMatches)))

	// Protected - Friends
	mux.Handle("GET /api/v1/friends", auth(http.HandlerFunc(friendHandler.ListFriends)))
	mux.Handle("GET /api/v1/friends/requests", auth(http.HandlerFunc(friendHandler.ListRequests)))
	mux.Handle("POST /api/v1/friends/requests", auth(http.HandlerFunc(friendHandler.AddFriend)))
	mux.Handle("POST /api/v1/friends/requests/{id}/accept", auth(http.HandlerFunc(friendHandler.AcceptRequest)))
	mux.Handle("POST /api/v1/friends/requests/{id}/decline", auth(http.HandlerFunc(friendHandler.DeclineRequest)))
	mux.Handle("GET /api/v1/friends/search", auth(http.HandlerFunc(friendHandler.SearchUsers)))

	// Protected - Profile & Users
	mux.Handle("GET /api/v1/profile", auth(http.HandlerFunc(profileHandler.GetProfile)))
	mux.Handle("PUT /api/v1/profile", auth(http.HandlerFunc(profileHandler.UpdateProfile)))
	mux.Handle("GET /api/v1/prompts", auth(http.HandlerFunc(profileHandler.ListPrompts)))
	mux.Handle("GET /api/v1/users/me", auth(http.HandlerFunc(userHandler.Me)))
	mux.Handle("GET /api/v1/users/{id}", auth(http.HandlerFunc(userHandler.GetUser)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
