package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Mohsin1016/post-blog-test/internal/config"
	"github.com/Mohsin1016/post-blog-test/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		PostService: services.Post,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, "api is running ok", http.StatusOK)
}
