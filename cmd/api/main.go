package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Mohsin1016/post-blog-test/cmd/app"
	"github.com/Mohsin1016/post-blog-test/internal/config"
	handlers "github.com/Mohsin1016/post-blog-test/internal/handler"
	"github.com/Mohsin1016/post-blog-test/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)

	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/profile", handler.Authenticated(handler.Profile)).Methods(http.MethodGet)
	router.HandleFunc("/logout", handler.Logout).Methods(http.MethodPost)

	router.HandleFunc("/post", handler.Authenticated(handler.CreatePost)).Methods(http.MethodPost)
	router.HandleFunc("/post", handler.Authenticated(handler.UpdatePost)).Methods(http.MethodPut)
	router.HandleFunc("/post", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/post/{id}", handler.GetPost).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg.ClientURL),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s (blob backend: %s)", addr, cfg.BlobBackend)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
